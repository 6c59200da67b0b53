package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shandysiswandi/studytrack/internal/identity/entity"
	"github.com/shandysiswandi/studytrack/internal/identity/usecase"
	"github.com/shandysiswandi/studytrack/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyOTPRacesSweepAtExpiryBoundary(t *testing.T) {
	fix := newFixture(t)
	ctx := t.Context()

	_, err := fix.uc.Signup(ctx, usecase.SignupInput{Email: "pia@example.com"})
	require.NoError(t, err)

	fix.clock.Advance(5*time.Minute - time.Second)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		fix.pending.SweepExpired(fix.clock.Now())
	}()
	_, err = fix.uc.VerifyOTP(ctx, usecase.VerifyOTPInput{Email: "pia@example.com", Code: "123456"})
	wg.Wait()
	require.NoError(t, err)

	// the entry is not expired yet, so the sweep must not drop the
	// verification however the two interleave
	p, ok := fix.pending.Get("pia@example.com")
	require.True(t, ok)
	assert.Equal(t, entity.PendingStateCodeVerified, p.State)
}

func TestSweepDropsExpiredEntryBeforeVerify(t *testing.T) {
	fix := newFixture(t)
	ctx := t.Context()

	_, err := fix.uc.Signup(ctx, usecase.SignupInput{Email: "quin@example.com"})
	require.NoError(t, err)

	fix.clock.Advance(6 * time.Minute)
	assert.Equal(t, 1, fix.pending.SweepExpired(fix.clock.Now()))

	_, err = fix.uc.VerifyOTP(ctx, usecase.VerifyOTPInput{Email: "quin@example.com", Code: "123456"})
	requireCode(t, err, goerror.CodeNotFound)
}

func TestStartExpirySweeperStopsOnShutdown(t *testing.T) {
	fix := newFixture(t)

	ctx, cancel := context.WithCancel(t.Context())
	fix.uc.StartExpirySweeper(ctx)

	cancel()
	require.NoError(t, fix.routine.Wait())
}
