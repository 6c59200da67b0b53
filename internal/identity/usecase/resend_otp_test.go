package usecase_test

import (
	"sync"
	"testing"

	"github.com/shandysiswandi/studytrack/internal/identity/entity"
	"github.com/shandysiswandi/studytrack/internal/identity/usecase"
	"github.com/shandysiswandi/studytrack/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResendOTPForPendingSignup(t *testing.T) {
	fix := newFixture(t)
	ctx := t.Context()

	_, err := fix.uc.Signup(ctx, usecase.SignupInput{Email: "uma@example.com"})
	require.NoError(t, err)

	out, err := fix.uc.ResendOTP(ctx, usecase.ResendOTPInput{Email: "uma@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "uma@example.com", out.Email)
	assert.Equal(t, 2, fix.mailer.count())

	p, ok := fix.pending.Get("uma@example.com")
	require.True(t, ok)
	assert.Equal(t, entity.PendingStateAwaitingCode, p.State)
}

func TestResendOTPCooldown(t *testing.T) {
	fix := newFixture(t)
	ctx := t.Context()

	_, err := fix.uc.Signup(ctx, usecase.SignupInput{Email: "vik@example.com"})
	require.NoError(t, err)

	_, err = fix.uc.ResendOTP(ctx, usecase.ResendOTPInput{Email: "vik@example.com"})
	require.NoError(t, err)

	_, err = fix.uc.ResendOTP(ctx, usecase.ResendOTPInput{Email: "vik@example.com"})
	requireCode(t, err, goerror.CodeTooManyRequest)
	assert.Equal(t, 2, fix.mailer.count())
}

func TestResendOTPVerifiedEntryConflicts(t *testing.T) {
	fix := newFixture(t)
	ctx := t.Context()

	_, err := fix.uc.Signup(ctx, usecase.SignupInput{Email: "wes@example.com"})
	require.NoError(t, err)
	_, err = fix.uc.VerifyOTP(ctx, usecase.VerifyOTPInput{Email: "wes@example.com", Code: "123456"})
	require.NoError(t, err)

	_, err = fix.uc.ResendOTP(ctx, usecase.ResendOTPInput{Email: "wes@example.com"})
	requireCode(t, err, goerror.CodeConflict)
}

func TestResendOTPUnknownEmail(t *testing.T) {
	fix := newFixture(t)

	_, err := fix.uc.ResendOTP(t.Context(), usecase.ResendOTPInput{Email: "zed@example.com"})
	requireCode(t, err, goerror.CodeNotFound)
}

func TestResendOTPVerifiedAccountConflicts(t *testing.T) {
	fix := newFixture(t)
	ctx := t.Context()

	require.NoError(t, fix.db.CreateUser(ctx, entity.NewUser{
		ID: 5, Email: "yara@example.com", Verified: true,
	}))

	_, err := fix.uc.ResendOTP(ctx, usecase.ResendOTPInput{Email: "yara@example.com"})
	requireCode(t, err, goerror.CodeConflict)
}

func TestResendOTPVerifiedAccountWithStaleCodeConflicts(t *testing.T) {
	fix := newFixture(t)
	ctx := t.Context()

	signupComplete(t, fix, "ximena@example.com", "Secret123!")
	_, err := fix.uc.LoginOTP(ctx, usecase.LoginOTPInput{Email: "ximena@example.com"})
	require.NoError(t, err)

	_, err = fix.uc.ResendOTP(ctx, usecase.ResendOTPInput{Email: "ximena@example.com"})
	requireCode(t, err, goerror.CodeConflict)
}

func TestResendOTPKeepsConcurrentVerification(t *testing.T) {
	fix := newFixture(t)
	ctx := t.Context()

	_, err := fix.uc.Signup(ctx, usecase.SignupInput{Email: "amir@example.com"})
	require.NoError(t, err)

	// Verify the current code while the resend's email is in flight. The
	// resend must not roll the entry back to awaiting-code afterwards.
	var once sync.Once
	fix.mailer.hook = func() {
		once.Do(func() {
			_, verr := fix.uc.VerifyOTP(ctx, usecase.VerifyOTPInput{Email: "amir@example.com", Code: "123456"})
			require.NoError(t, verr)
		})
	}

	_, err = fix.uc.ResendOTP(ctx, usecase.ResendOTPInput{Email: "amir@example.com"})
	requireCode(t, err, goerror.CodeConflict)

	p, ok := fix.pending.Get("amir@example.com")
	require.True(t, ok)
	assert.Equal(t, entity.PendingStateCodeVerified, p.State)

	out, err := fix.uc.CompleteSignup(ctx, usecase.CompleteSignupInput{
		Email:    "amir@example.com",
		Password: "Secret123!",
	})
	require.NoError(t, err)
	assert.Equal(t, "amir@example.com", out.Email)
}

func TestResendOTPUnverifiedAccountSetsNewCode(t *testing.T) {
	fix := newFixture(t)
	ctx := t.Context()

	require.NoError(t, fix.db.CreateUser(ctx, entity.NewUser{ID: 6, Email: "zoe@example.com"}))

	_, err := fix.uc.ResendOTP(ctx, usecase.ResendOTPInput{Email: "zoe@example.com"})
	require.NoError(t, err)
	assert.Equal(t, 1, fix.mailer.count())

	user, err := fix.db.GetUserByEmail(ctx, "zoe@example.com")
	require.NoError(t, err)
	assert.True(t, user.HasActiveOTP())
}
