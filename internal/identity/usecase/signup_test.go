package usecase_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shandysiswandi/studytrack/internal/identity/entity"
	"github.com/shandysiswandi/studytrack/internal/identity/usecase"
	"github.com/shandysiswandi/studytrack/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupSendsCodeAndHoldsPending(t *testing.T) {
	fix := newFixture(t)
	ctx := t.Context()

	out, err := fix.uc.Signup(ctx, usecase.SignupInput{Email: "  Alice@Example.COM "})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", out.Email)
	assert.Equal(t, fix.clock.Now().Add(5*time.Minute), out.ExpiresAt)

	require.Equal(t, 1, fix.mailer.count())
	assert.Contains(t, fix.mailer.sent[0].TextBody, "123456")
	assert.Equal(t, []string{"alice@example.com"}, fix.mailer.sent[0].To)

	p, ok := fix.pending.Get("alice@example.com")
	require.True(t, ok)
	assert.Equal(t, entity.PendingStateAwaitingCode, p.State)
	assert.True(t, fix.hmac.Verify(p.OTPHash, "123456"))
}

func TestSignupDispatchFailureLeavesNoState(t *testing.T) {
	fix := newFixture(t)
	fix.mailer.fail = errors.New("smtp: connection refused")

	_, err := fix.uc.Signup(t.Context(), usecase.SignupInput{Email: "bob@example.com"})
	requireCode(t, err, goerror.CodeDependencyFailure)

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, 502, gerr.StatusCode())

	_, ok := fix.pending.Get("bob@example.com")
	assert.False(t, ok)
}

func TestSignupVerifiedEmailConflicts(t *testing.T) {
	fix := newFixture(t)
	ctx := t.Context()

	require.NoError(t, fix.db.CreateUser(ctx, entity.NewUser{
		ID: 1, Email: "taken@example.com", Verified: true,
	}))

	_, err := fix.uc.Signup(ctx, usecase.SignupInput{Email: "taken@example.com"})
	requireCode(t, err, goerror.CodeConflict)
	assert.Equal(t, 0, fix.mailer.count())
}

func TestSignupInvalidEmail(t *testing.T) {
	fix := newFixture(t)

	_, err := fix.uc.Signup(t.Context(), usecase.SignupInput{Email: "not-an-email"})
	require.Error(t, err)

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.True(t, strings.Contains(strings.ToLower(gerr.Msg()), "valid") || gerr.StatusCode() == 422)
}

func TestSignupOverwritesPreviousPending(t *testing.T) {
	fix := newFixture(t)
	ctx := t.Context()

	_, err := fix.uc.Signup(ctx, usecase.SignupInput{Email: "carol@example.com"})
	require.NoError(t, err)

	_, err = fix.uc.VerifyOTP(ctx, usecase.VerifyOTPInput{Email: "carol@example.com", Code: "123456"})
	require.NoError(t, err)

	// signing up again resets progress back to awaiting a fresh code
	_, err = fix.uc.Signup(ctx, usecase.SignupInput{Email: "carol@example.com"})
	require.NoError(t, err)

	p, ok := fix.pending.Get("carol@example.com")
	require.True(t, ok)
	assert.Equal(t, entity.PendingStateAwaitingCode, p.State)
}
