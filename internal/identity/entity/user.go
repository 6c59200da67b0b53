package entity

import "time"

type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	Verified     bool
	OTPHash      string
	OTPExpiresAt time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasActiveOTP reports whether the account carries a code that has not been
// cleared yet. Expiry is checked separately against a clock.
func (u User) HasActiveOTP() bool {
	return u.OTPHash != ""
}

type NewUser struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	Verified     bool
}
