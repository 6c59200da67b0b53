// Package pending holds signups that have not been persisted yet.
//
// Entries live only in process memory; a restart discards them and the user
// simply requests a new code. The store is sharded so concurrent requests for
// different emails do not contend on a single lock, while all mutations for
// one email are serialized by its shard.
package pending

import (
	"hash/fnv"
	"sync"
	"time"

	"github.com/shandysiswandi/studytrack/internal/identity/entity"
	"go.uber.org/atomic"
)

const shardCount = 32

type shard struct {
	mu      sync.Mutex
	entries map[string]entity.PendingSignup
}

// Store is an in-process, lock-striped holding area keyed by normalized email.
type Store struct {
	shards [shardCount]*shard
	size   atomic.Int64
}

// NewStore builds an empty store.
func NewStore() *Store {
	s := &Store{}
	for i := range s.shards {
		s.shards[i] = &shard{entries: make(map[string]entity.PendingSignup)}
	}
	return s
}

func (s *Store) shardFor(email string) *shard {
	h := fnv.New32a()
	h.Write([]byte(email))
	return s.shards[h.Sum32()%shardCount]
}

// Put stores or overwrites the entry for email.
func (s *Store) Put(email string, p entity.PendingSignup) {
	sh := s.shardFor(email)
	sh.mu.Lock()
	if _, ok := sh.entries[email]; !ok {
		s.size.Inc()
	}
	sh.entries[email] = p
	sh.mu.Unlock()
}

// Get returns a copy of the entry for email, if present.
func (s *Store) Get(email string) (entity.PendingSignup, bool) {
	sh := s.shardFor(email)
	sh.mu.Lock()
	p, ok := sh.entries[email]
	sh.mu.Unlock()
	return p, ok
}

// Mutate runs fn while holding the lock that guards email's entry.
//
// fn receives the current entry, or nil when absent, and returns the
// replacement entry; returning nil removes the entry. The error from fn is
// passed through unchanged, and the replacement is applied regardless so a
// failed verification can still discard an expired entry.
func (s *Store) Mutate(email string, fn func(cur *entity.PendingSignup) (*entity.PendingSignup, error)) error {
	sh := s.shardFor(email)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	var cur *entity.PendingSignup
	if p, ok := sh.entries[email]; ok {
		cp := p
		cur = &cp
	}

	next, err := fn(cur)
	switch {
	case next == nil && cur != nil:
		delete(sh.entries, email)
		s.size.Dec()
	case next != nil && cur == nil:
		sh.entries[email] = *next
		s.size.Inc()
	case next != nil:
		sh.entries[email] = *next
	}

	return err
}

// Delete removes the entry for email, if present.
func (s *Store) Delete(email string) {
	sh := s.shardFor(email)
	sh.mu.Lock()
	if _, ok := sh.entries[email]; ok {
		delete(sh.entries, email)
		s.size.Dec()
	}
	sh.mu.Unlock()
}

// SweepExpired removes every entry whose expiry is before now and returns how
// many were removed. Expiry is re-checked under each shard lock so an entry
// refreshed by a concurrent resend is never lost.
func (s *Store) SweepExpired(now time.Time) int {
	removed := 0
	for _, sh := range s.shards {
		sh.mu.Lock()
		for email, p := range sh.entries {
			if p.Expired(now) {
				delete(sh.entries, email)
				s.size.Dec()
				removed++
			}
		}
		sh.mu.Unlock()
	}
	return removed
}

// Len returns the number of held entries.
func (s *Store) Len() int {
	return int(s.size.Load())
}
