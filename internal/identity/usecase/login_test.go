package usecase_test

import (
	"testing"
	"time"

	"github.com/shandysiswandi/studytrack/internal/identity/usecase"
	"github.com/shandysiswandi/studytrack/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signupComplete(t *testing.T, fix *fixture, email, password string) {
	t.Helper()
	ctx := t.Context()

	_, err := fix.uc.Signup(ctx, usecase.SignupInput{Email: email})
	require.NoError(t, err)
	_, err = fix.uc.VerifyOTP(ctx, usecase.VerifyOTPInput{Email: email, Code: "123456"})
	require.NoError(t, err)
	_, err = fix.uc.CompleteSignup(ctx, usecase.CompleteSignupInput{Email: email, Password: password})
	require.NoError(t, err)
}

func TestLoginWithPassword(t *testing.T) {
	fix := newFixture(t)
	signupComplete(t, fix, "olga@example.com", "Secret123!")

	out, err := fix.uc.Login(t.Context(), usecase.LoginInput{
		Email:    "olga@example.com",
		Password: "Secret123!",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
}

func TestLoginWrongPassword(t *testing.T) {
	fix := newFixture(t)
	signupComplete(t, fix, "pam@example.com", "Secret123!")

	_, err := fix.uc.Login(t.Context(), usecase.LoginInput{
		Email:    "pam@example.com",
		Password: "WrongPass1!",
	})
	requireCode(t, err, goerror.CodeUnauthorized)
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	fix := newFixture(t)

	_, err := fix.uc.Login(t.Context(), usecase.LoginInput{
		Email:    "who@example.com",
		Password: "Secret123!",
	})
	requireCode(t, err, goerror.CodeUnauthorized)
}

func TestLoginOTPThenVerify(t *testing.T) {
	fix := newFixture(t)
	ctx := t.Context()
	signupComplete(t, fix, "quinn@example.com", "Secret123!")

	sentBefore := fix.mailer.count()
	_, err := fix.uc.LoginOTP(ctx, usecase.LoginOTPInput{Email: "quinn@example.com"})
	require.NoError(t, err)
	assert.Equal(t, sentBefore+1, fix.mailer.count())

	out, err := fix.uc.LoginVerify(ctx, usecase.LoginVerifyInput{
		Email: "quinn@example.com",
		Code:  "123456",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)

	// the code is single use
	_, err = fix.uc.LoginVerify(ctx, usecase.LoginVerifyInput{
		Email: "quinn@example.com",
		Code:  "123456",
	})
	requireCode(t, err, goerror.CodeNotFound)
}

func TestLoginOTPUnknownEmailNoReveal(t *testing.T) {
	fix := newFixture(t)

	out, err := fix.uc.LoginOTP(t.Context(), usecase.LoginOTPInput{Email: "unknown@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "unknown@example.com", out.Email)
	assert.Equal(t, 0, fix.mailer.count())
}

func TestLoginVerifyExpiredCode(t *testing.T) {
	fix := newFixture(t)
	ctx := t.Context()
	signupComplete(t, fix, "ruth@example.com", "Secret123!")

	_, err := fix.uc.LoginOTP(ctx, usecase.LoginOTPInput{Email: "ruth@example.com"})
	require.NoError(t, err)

	fix.clock.Advance(6 * time.Minute)

	_, err = fix.uc.LoginVerify(ctx, usecase.LoginVerifyInput{
		Email: "ruth@example.com",
		Code:  "123456",
	})
	requireCode(t, err, goerror.CodeInvalidFormat)
}

func TestRefreshTokenRotates(t *testing.T) {
	fix := newFixture(t)
	ctx := t.Context()

	_, err := fix.uc.Signup(ctx, usecase.SignupInput{Email: "sam@example.com"})
	require.NoError(t, err)
	_, err = fix.uc.VerifyOTP(ctx, usecase.VerifyOTPInput{Email: "sam@example.com", Code: "123456"})
	require.NoError(t, err)
	created, err := fix.uc.CompleteSignup(ctx, usecase.CompleteSignupInput{
		Email:    "sam@example.com",
		Password: "Secret123!",
	})
	require.NoError(t, err)

	out, err := fix.uc.RefreshToken(ctx, usecase.RefreshTokenInput{RefreshToken: created.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	fix := newFixture(t)
	ctx := t.Context()
	signupComplete(t, fix, "tess@example.com", "Secret123!")

	login, err := fix.uc.Login(ctx, usecase.LoginInput{Email: "tess@example.com", Password: "Secret123!"})
	require.NoError(t, err)

	// access tokens are signed with a different key
	_, err = fix.uc.RefreshToken(ctx, usecase.RefreshTokenInput{RefreshToken: login.AccessToken})
	requireCode(t, err, goerror.CodeUnauthorized)
}

func TestRefreshTokenGarbage(t *testing.T) {
	fix := newFixture(t)

	_, err := fix.uc.RefreshToken(t.Context(), usecase.RefreshTokenInput{RefreshToken: "not-a-jwt"})
	requireCode(t, err, goerror.CodeUnauthorized)
}
