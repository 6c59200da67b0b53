package entity

import "time"

// PendingState tracks how far a not-yet-persisted signup has progressed.
type PendingState int16

const (
	// PendingStateAwaitingCode means a code was issued and not verified yet.
	PendingStateAwaitingCode PendingState = 1

	// PendingStateCodeVerified means the code was verified and the signup is
	// waiting for the password to be set.
	PendingStateCodeVerified PendingState = 2
)

func (ps PendingState) String() string {
	switch ps {
	case PendingStateAwaitingCode:
		return "AwaitingCode"
	case PendingStateCodeVerified:
		return "CodeVerified"
	default:
		return "Unknown"
	}
}

// PendingSignup is the transient holding entry for a signup that has not been
// persisted yet. It lives only in process memory and is lost on restart.
type PendingSignup struct {
	OTPHash   string
	ExpiresAt time.Time
	State     PendingState
}

// Expired reports whether the entry's code is past its expiry at the given time.
func (p PendingSignup) Expired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}
