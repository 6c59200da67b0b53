package pending

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shandysiswandi/studytrack/internal/identity/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePutGetDelete(t *testing.T) {
	s := NewStore()
	now := time.Now()

	_, ok := s.Get("a@example.com")
	assert.False(t, ok)

	s.Put("a@example.com", entity.PendingSignup{
		OTPHash:   "h1",
		ExpiresAt: now.Add(5 * time.Minute),
		State:     entity.PendingStateAwaitingCode,
	})

	got, ok := s.Get("a@example.com")
	require.True(t, ok)
	assert.Equal(t, "h1", got.OTPHash)
	assert.Equal(t, 1, s.Len())

	s.Put("a@example.com", entity.PendingSignup{OTPHash: "h2", ExpiresAt: now.Add(5 * time.Minute)})
	got, ok = s.Get("a@example.com")
	require.True(t, ok)
	assert.Equal(t, "h2", got.OTPHash)
	assert.Equal(t, 1, s.Len())

	s.Delete("a@example.com")
	_, ok = s.Get("a@example.com")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestStoreMutate(t *testing.T) {
	s := NewStore()
	now := time.Now()

	called := false
	err := s.Mutate("missing@example.com", func(cur *entity.PendingSignup) (*entity.PendingSignup, error) {
		called = true
		assert.Nil(t, cur)
		return nil, nil
	})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, 0, s.Len())

	err = s.Mutate("new@example.com", func(cur *entity.PendingSignup) (*entity.PendingSignup, error) {
		return &entity.PendingSignup{OTPHash: "h", ExpiresAt: now.Add(time.Minute), State: entity.PendingStateAwaitingCode}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())

	err = s.Mutate("new@example.com", func(cur *entity.PendingSignup) (*entity.PendingSignup, error) {
		require.NotNil(t, cur)
		cur.State = entity.PendingStateCodeVerified
		return cur, nil
	})
	require.NoError(t, err)

	got, ok := s.Get("new@example.com")
	require.True(t, ok)
	assert.Equal(t, entity.PendingStateCodeVerified, got.State)

	wantErr := errors.New("boom")
	err = s.Mutate("new@example.com", func(cur *entity.PendingSignup) (*entity.PendingSignup, error) {
		return nil, wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	// the replacement applies even when fn errors
	_, ok = s.Get("new@example.com")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestStoreSweepExpired(t *testing.T) {
	s := NewStore()
	now := time.Now()

	s.Put("live@example.com", entity.PendingSignup{ExpiresAt: now.Add(time.Minute)})
	s.Put("dead1@example.com", entity.PendingSignup{ExpiresAt: now.Add(-time.Second)})
	s.Put("dead2@example.com", entity.PendingSignup{ExpiresAt: now.Add(-time.Hour)})

	removed := s.SweepExpired(now)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, s.Len())

	_, ok := s.Get("live@example.com")
	assert.True(t, ok)
}

func TestStoreMutateConsumeOnce(t *testing.T) {
	s := NewStore()
	s.Put("race@example.com", entity.PendingSignup{
		OTPHash:   "h",
		ExpiresAt: time.Now().Add(time.Minute),
		State:     entity.PendingStateCodeVerified,
	})

	const workers = 50

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		consumed int
	)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Mutate("race@example.com", func(cur *entity.PendingSignup) (*entity.PendingSignup, error) {
				if cur == nil || cur.State != entity.PendingStateCodeVerified {
					return cur, nil
				}
				mu.Lock()
				consumed++
				mu.Unlock()
				return nil, nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, consumed)
	assert.Equal(t, 0, s.Len())
}
