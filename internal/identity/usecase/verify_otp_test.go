package usecase_test

import (
	"testing"
	"time"

	"github.com/shandysiswandi/studytrack/internal/identity/entity"
	"github.com/shandysiswandi/studytrack/internal/identity/usecase"
	"github.com/shandysiswandi/studytrack/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyOTPTransitionsPending(t *testing.T) {
	fix := newFixture(t)
	ctx := t.Context()

	_, err := fix.uc.Signup(ctx, usecase.SignupInput{Email: "dave@example.com"})
	require.NoError(t, err)

	out, err := fix.uc.VerifyOTP(ctx, usecase.VerifyOTPInput{Email: "dave@example.com", Code: "123456"})
	require.NoError(t, err)
	assert.Equal(t, "dave@example.com", out.Email)

	p, ok := fix.pending.Get("dave@example.com")
	require.True(t, ok)
	assert.Equal(t, entity.PendingStateCodeVerified, p.State)
}

func TestVerifyOTPWrongCodeKeepsEntry(t *testing.T) {
	fix := newFixture(t)
	ctx := t.Context()

	_, err := fix.uc.Signup(ctx, usecase.SignupInput{Email: "erin@example.com"})
	require.NoError(t, err)

	_, err = fix.uc.VerifyOTP(ctx, usecase.VerifyOTPInput{Email: "erin@example.com", Code: "000000"})
	requireCode(t, err, goerror.CodeInvalidFormat)

	// a wrong guess must not burn the real code
	p, ok := fix.pending.Get("erin@example.com")
	require.True(t, ok)
	assert.Equal(t, entity.PendingStateAwaitingCode, p.State)

	_, err = fix.uc.VerifyOTP(ctx, usecase.VerifyOTPInput{Email: "erin@example.com", Code: "123456"})
	require.NoError(t, err)
}

func TestVerifyOTPExpiredDeletesEntry(t *testing.T) {
	fix := newFixture(t)
	ctx := t.Context()

	_, err := fix.uc.Signup(ctx, usecase.SignupInput{Email: "frank@example.com"})
	require.NoError(t, err)

	fix.clock.Advance(6 * time.Minute)

	_, err = fix.uc.VerifyOTP(ctx, usecase.VerifyOTPInput{Email: "frank@example.com", Code: "123456"})
	requireCode(t, err, goerror.CodeInvalidFormat)

	_, ok := fix.pending.Get("frank@example.com")
	assert.False(t, ok)
}

func TestVerifyOTPUnknownEmail(t *testing.T) {
	fix := newFixture(t)

	_, err := fix.uc.VerifyOTP(t.Context(), usecase.VerifyOTPInput{Email: "ghost@example.com", Code: "123456"})
	requireCode(t, err, goerror.CodeNotFound)
}

func TestVerifyOTPVerifiedAccountIdempotent(t *testing.T) {
	fix := newFixture(t)
	ctx := t.Context()

	require.NoError(t, fix.db.CreateUser(ctx, entity.NewUser{
		ID: 7, Email: "grace@example.com", Verified: true,
	}))

	out, err := fix.uc.VerifyOTP(ctx, usecase.VerifyOTPInput{Email: "grace@example.com", Code: "999999"})
	require.NoError(t, err)
	assert.Equal(t, "grace@example.com", out.Email)
}

func TestVerifyOTPVerifiedAccountWithLoginCode(t *testing.T) {
	fix := newFixture(t)
	ctx := t.Context()

	signupComplete(t, fix, "hana@example.com", "Secret123!")
	_, err := fix.uc.LoginOTP(ctx, usecase.LoginOTPInput{Email: "hana@example.com"})
	require.NoError(t, err)

	out, err := fix.uc.VerifyOTP(ctx, usecase.VerifyOTPInput{Email: "hana@example.com", Code: "999999"})
	require.NoError(t, err)
	assert.Equal(t, "hana@example.com", out.Email)

	// the login code stays live for login-verify
	user, err := fix.db.GetUserByEmail(ctx, "hana@example.com")
	require.NoError(t, err)
	assert.True(t, user.HasActiveOTP())

	lv, err := fix.uc.LoginVerify(ctx, usecase.LoginVerifyInput{Email: "hana@example.com", Code: "123456"})
	require.NoError(t, err)
	assert.NotEmpty(t, lv.AccessToken)
}

func TestVerifyOTPAccountCodeExpired(t *testing.T) {
	fix := newFixture(t)
	ctx := t.Context()

	require.NoError(t, fix.db.CreateUser(ctx, entity.NewUser{ID: 8, Email: "henry@example.com"}))
	hashVal, err := fix.hmac.Hash("123456")
	require.NoError(t, err)
	require.NoError(t, fix.db.SetUserOTP(ctx, 8, string(hashVal), fix.clock.Now().Add(5*time.Minute)))

	fix.clock.Advance(10 * time.Minute)

	_, err = fix.uc.VerifyOTP(ctx, usecase.VerifyOTPInput{Email: "henry@example.com", Code: "123456"})
	requireCode(t, err, goerror.CodeInvalidFormat)

	user, err := fix.db.GetUserByEmail(ctx, "henry@example.com")
	require.NoError(t, err)
	assert.False(t, user.HasActiveOTP())
}

func TestVerifyOTPAccountMatchMarksVerified(t *testing.T) {
	fix := newFixture(t)
	ctx := t.Context()

	require.NoError(t, fix.db.CreateUser(ctx, entity.NewUser{ID: 9, Email: "iris@example.com"}))
	hashVal, err := fix.hmac.Hash("123456")
	require.NoError(t, err)
	require.NoError(t, fix.db.SetUserOTP(ctx, 9, string(hashVal), fix.clock.Now().Add(5*time.Minute)))

	_, err = fix.uc.VerifyOTP(ctx, usecase.VerifyOTPInput{Email: "iris@example.com", Code: "123456"})
	require.NoError(t, err)

	user, err := fix.db.GetUserByEmail(ctx, "iris@example.com")
	require.NoError(t, err)
	assert.True(t, user.Verified)
	assert.False(t, user.HasActiveOTP())
}
