package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shandysiswandi/studytrack/internal/notification/usecase"
	"github.com/shandysiswandi/studytrack/internal/pkg/config"
	"github.com/shandysiswandi/studytrack/internal/pkg/instrument"
	"github.com/shandysiswandi/studytrack/internal/pkg/mail"
	"github.com/shandysiswandi/studytrack/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	sent []mail.Message
	fail error
}

func (f *fakeMailer) Send(_ context.Context, msg mail.Message) error {
	if f.fail != nil {
		return f.fail
	}
	f.sent = append(f.sent, msg)
	return nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

const testConfigYAML = `
app:
  name: StudyTrack
  support_email: support@studytrack.app
`

func newUsecase(t *testing.T, mailer *fakeMailer) *usecase.Usecase {
	t.Helper()

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	cfg, err := config.NewViperFromBytes("yaml", []byte(testConfigYAML))
	require.NoError(t, err)

	return usecase.New(usecase.Dependency{
		Config:     cfg,
		Clock:      fixedClock{now: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)},
		Validator:  v,
		RepoMail:   mailer,
		Instrument: instrument.NewNoop(),
	})
}

func TestConsumeUserRegisteredSendsWelcome(t *testing.T) {
	mailer := &fakeMailer{}
	uc := newUsecase(t, mailer)

	err := uc.ConsumeUserRegistered(t.Context(), usecase.ConsumeUserRegisteredInput{
		UserID: 1,
		Email:  "ada@example.com",
		Name:   "Ada",
	})
	require.NoError(t, err)

	require.Len(t, mailer.sent, 1)
	msg := mailer.sent[0]
	assert.Equal(t, []string{"ada@example.com"}, msg.To)
	assert.Equal(t, "Welcome to StudyTrack", msg.Subject)
	assert.Contains(t, msg.HTMLBody, "Welcome, Ada!")
	assert.Contains(t, msg.HTMLBody, "support@studytrack.app")
	assert.Contains(t, msg.HTMLBody, "2026")
}

func TestConsumeUserRegisteredFallsBackToEmail(t *testing.T) {
	mailer := &fakeMailer{}
	uc := newUsecase(t, mailer)

	err := uc.ConsumeUserRegistered(t.Context(), usecase.ConsumeUserRegisteredInput{
		UserID: 2,
		Email:  "no-name@example.com",
	})
	require.NoError(t, err)

	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0].HTMLBody, "Welcome, no-name@example.com!")
}

func TestConsumeUserRegisteredDropsInvalidPayload(t *testing.T) {
	mailer := &fakeMailer{}
	uc := newUsecase(t, mailer)

	err := uc.ConsumeUserRegistered(t.Context(), usecase.ConsumeUserRegisteredInput{
		UserID: 3,
		Email:  "not-an-email",
	})
	require.NoError(t, err)
	assert.Empty(t, mailer.sent)
}

func TestConsumeUserRegisteredSendFailureBubbles(t *testing.T) {
	mailer := &fakeMailer{fail: errors.New("smtp down")}
	uc := newUsecase(t, mailer)

	err := uc.ConsumeUserRegistered(t.Context(), usecase.ConsumeUserRegisteredInput{
		UserID: 4,
		Email:  "ada@example.com",
		Name:   "Ada",
	})
	require.Error(t, err)
}
