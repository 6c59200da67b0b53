package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/studytrack/internal/pkg/mail"
)

const welcomeSubjectTemplate = `Welcome to {{.app_name}}`

const welcomeBodyTemplate = `<html>
<body style="font-family: sans-serif">
	<h2>Welcome, {{.name}}!</h2>
	<p>Your {{.app_name}} account is ready. Your study hours and curriculum
	progress are now saved to your account on every device you sign in to.</p>
	<p>Questions? Reach us at {{.support_email}}.</p>
	<p style="color: #888">&copy; {{.year}} {{.app_name}}</p>
</body>
</html>`

type ConsumeUserRegisteredInput struct {
	UserID int64  `validate:"required,gt=0"`
	Email  string `validate:"required,email"`
	Name   string `validate:"omitempty,max=100"`
}

// ConsumeUserRegistered sends the welcome email for a freshly created
// account. Invalid payloads are dropped, send failures bubble up so the
// bus can redeliver.
func (s *Usecase) ConsumeUserRegistered(ctx context.Context, in ConsumeUserRegisteredInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeUserRegistered")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "invalid user registered payload", "user_id", in.UserID, "error", err)
		return nil
	}

	data := s.baseEmailTemplateData()
	data["name"] = in.Name
	if in.Name == "" {
		data["name"] = in.Email
	}

	subject, err := s.renderTemplate("subject", welcomeSubjectTemplate, data)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render welcome subject", "user_id", in.UserID, "error", err)
		return nil
	}

	body, err := s.renderTemplate("body", welcomeBodyTemplate, data)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render welcome body", "user_id", in.UserID, "error", err)
		return nil
	}

	if err := s.repoMail.Send(ctx, mail.Message{
		To:       []string{in.Email},
		Subject:  subject,
		HTMLBody: body,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to send welcome email", "user_id", in.UserID, "error", err)
		return err
	}

	return nil
}
