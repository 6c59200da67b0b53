package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shandysiswandi/studytrack/internal/pkg/mail"
)

// sendOTPEmail dispatches the verification code synchronously. Callers treat a
// failure here as a hard stop so no state is recorded for a code the user will
// never receive.
func (s *Usecase) sendOTPEmail(ctx context.Context, email, code string, ttl time.Duration) error {
	minutes := int(ttl.Minutes())

	text := fmt.Sprintf(
		"Your StudyTrack verification code is %s. It expires in %d minutes.\n\n"+
			"If you did not request this code, you can ignore this email.",
		code, minutes,
	)

	html := fmt.Sprintf(
		`<p>Your StudyTrack verification code is:</p>
<p style="font-size:24px;font-weight:bold;letter-spacing:4px;">%s</p>
<p>It expires in %d minutes. If you did not request this code, you can ignore this email.</p>`,
		code, minutes,
	)

	return s.mailer.Send(ctx, mail.Message{
		To:       []string{email},
		Subject:  "Your StudyTrack verification code",
		TextBody: text,
		HTMLBody: html,
	})
}
