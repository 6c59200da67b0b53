package usecase_test

import (
	"sync"
	"testing"
	"time"

	"github.com/shandysiswandi/studytrack/internal/identity/entity"
	"github.com/shandysiswandi/studytrack/internal/identity/usecase"
	"github.com/shandysiswandi/studytrack/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteSignupHappyPath(t *testing.T) {
	fix := newFixture(t)
	ctx := t.Context()

	_, err := fix.uc.Signup(ctx, usecase.SignupInput{Email: "judy@example.com"})
	require.NoError(t, err)
	_, err = fix.uc.VerifyOTP(ctx, usecase.VerifyOTPInput{Email: "judy@example.com", Code: "123456"})
	require.NoError(t, err)

	out, err := fix.uc.CompleteSignup(ctx, usecase.CompleteSignupInput{
		Email:    "judy@example.com",
		Password: "Secret123!",
		Name:     "Judy Tester",
	})
	require.NoError(t, err)
	assert.Equal(t, "judy@example.com", out.Email)
	assert.Equal(t, "Judy Tester", out.Name)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)

	user, err := fix.db.GetUserByEmail(ctx, "judy@example.com")
	require.NoError(t, err)
	assert.True(t, user.Verified)
	assert.NotEmpty(t, user.PasswordHash)

	_, ok := fix.pending.Get("judy@example.com")
	assert.False(t, ok)

	require.Len(t, fix.mq.events, 1)
	assert.Equal(t, "judy@example.com", fix.mq.events[0].Email)
}

func TestCompleteSignupDefaultsNameFromEmail(t *testing.T) {
	fix := newFixture(t)
	ctx := t.Context()

	_, err := fix.uc.Signup(ctx, usecase.SignupInput{Email: "kai.lan@example.com"})
	require.NoError(t, err)
	_, err = fix.uc.VerifyOTP(ctx, usecase.VerifyOTPInput{Email: "kai.lan@example.com", Code: "123456"})
	require.NoError(t, err)

	out, err := fix.uc.CompleteSignup(ctx, usecase.CompleteSignupInput{
		Email:    "kai.lan@example.com",
		Password: "Secret123!",
	})
	require.NoError(t, err)
	assert.Equal(t, "kai lan", out.Name)
}

func TestCompleteSignupWithoutVerification(t *testing.T) {
	fix := newFixture(t)
	ctx := t.Context()

	_, err := fix.uc.Signup(ctx, usecase.SignupInput{Email: "leo@example.com"})
	require.NoError(t, err)

	_, err = fix.uc.CompleteSignup(ctx, usecase.CompleteSignupInput{
		Email:    "leo@example.com",
		Password: "Secret123!",
	})
	requireCode(t, err, goerror.CodeInvalidFormat)

	// the awaiting entry must survive for a later verify
	p, ok := fix.pending.Get("leo@example.com")
	require.True(t, ok)
	assert.Equal(t, entity.PendingStateAwaitingCode, p.State)
}

func TestCompleteSignupNoPendingNoAccount(t *testing.T) {
	fix := newFixture(t)

	_, err := fix.uc.CompleteSignup(t.Context(), usecase.CompleteSignupInput{
		Email:    "nobody@example.com",
		Password: "Secret123!",
	})
	requireCode(t, err, goerror.CodeInvalidFormat)
}

func TestCompleteSignupExistingAccountConflicts(t *testing.T) {
	fix := newFixture(t)
	ctx := t.Context()

	require.NoError(t, fix.db.CreateUser(ctx, entity.NewUser{
		ID: 3, Email: "mona@example.com", Verified: true,
	}))

	_, err := fix.uc.CompleteSignup(ctx, usecase.CompleteSignupInput{
		Email:    "mona@example.com",
		Password: "Secret123!",
	})
	requireCode(t, err, goerror.CodeConflict)
}

func TestCompleteSignupExpiredEntry(t *testing.T) {
	fix := newFixture(t)
	ctx := t.Context()

	_, err := fix.uc.Signup(ctx, usecase.SignupInput{Email: "nina@example.com"})
	require.NoError(t, err)
	_, err = fix.uc.VerifyOTP(ctx, usecase.VerifyOTPInput{Email: "nina@example.com", Code: "123456"})
	require.NoError(t, err)

	fix.clock.Advance(6 * time.Minute)

	_, err = fix.uc.CompleteSignup(ctx, usecase.CompleteSignupInput{
		Email:    "nina@example.com",
		Password: "Secret123!",
	})
	requireCode(t, err, goerror.CodeInvalidFormat)

	_, ok := fix.pending.Get("nina@example.com")
	assert.False(t, ok)
}

func TestCompleteSignupConcurrentSingleWinner(t *testing.T) {
	fix := newFixture(t)
	ctx := t.Context()

	hashVal, err := fix.hmac.Hash("123456")
	require.NoError(t, err)
	fix.pending.Put("race@example.com", entity.PendingSignup{
		OTPHash:   string(hashVal),
		ExpiresAt: fix.clock.Now().Add(5 * time.Minute),
		State:     entity.PendingStateCodeVerified,
	})

	const workers = 10

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := fix.uc.CompleteSignup(ctx, usecase.CompleteSignupInput{
				Email:    "race@example.com",
				Password: "Secret123!",
			})
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)

	user, err := fix.db.GetUserByEmail(ctx, "race@example.com")
	require.NoError(t, err)
	assert.True(t, user.Verified)
}
