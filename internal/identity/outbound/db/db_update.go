package db

import (
	"context"
	"time"

	"github.com/shandysiswandi/studytrack/internal/pkg/goerror"
)

const setUserOTPQuery = `
UPDATE users
SET otp_hash = $2, otp_expires_at = $3, updated_at = now()
WHERE id = $1
`

func (s *DB) SetUserOTP(ctx context.Context, id int64, otpHash string, expiresAt time.Time) (err error) {
	ctx, span := s.startSpan(ctx, "SetUserOTP")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, setUserOTPQuery, id, otpHash, expiresAt)
	if err != nil {
		err = s.mapError(err)
		return err
	}
	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
	}
	return err
}

const clearUserOTPQuery = `
UPDATE users
SET otp_hash = NULL, otp_expires_at = NULL, updated_at = now()
WHERE id = $1
`

func (s *DB) ClearUserOTP(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "ClearUserOTP")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, clearUserOTPQuery, id)
	err = s.mapError(err)
	return err
}

const markUserVerifiedQuery = `
UPDATE users
SET verified = TRUE, otp_hash = NULL, otp_expires_at = NULL, updated_at = now()
WHERE id = $1
`

func (s *DB) MarkUserVerified(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "MarkUserVerified")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, markUserVerifiedQuery, id)
	if err != nil {
		err = s.mapError(err)
		return err
	}
	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
	}
	return err
}
