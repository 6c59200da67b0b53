package otp

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// ErrInvalidLength is returned when a generator is asked for zero or negative digits.
var ErrInvalidLength = errors.New("otp: code length must be positive")

// Generator produces one-time codes.
type Generator interface {
	Generate() (string, error)
}

// Numeric generates fixed-length decimal codes from crypto/rand.
type Numeric struct {
	length int
}

// NewNumeric returns a generator for codes of the given number of digits.
// Lengths outside 4..10 fall back to 6, the usual email OTP size.
func NewNumeric(length int) *Numeric {
	if length < 4 || length > 10 {
		length = 6
	}
	return &Numeric{length: length}
}

// Generate returns a new random code, zero-padded to the configured length.
func (n *Numeric) Generate() (string, error) {
	if n.length <= 0 {
		return "", ErrInvalidLength
	}

	code := make([]byte, n.length)
	for i := range code {
		v, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code[i] = byte('0' + v.Int64())
	}

	return string(code), nil
}
