package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shandysiswandi/studytrack/internal/identity/entity"
)

const getUserByEmailQuery = `
SELECT id, email, name, password_hash, verified, otp_hash, otp_expires_at, created_at, updated_at
FROM users
WHERE lower(email) = lower($1)
`

func (s *DB) GetUserByEmail(ctx context.Context, email string) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByEmail")
	defer func() { s.endSpan(span, err) }()

	user, err := s.scanUser(s.conn.QueryRow(ctx, getUserByEmailQuery, email))
	if err != nil {
		return nil, s.mapError(err)
	}

	return user, nil
}

const getUserByIDQuery = `
SELECT id, email, name, password_hash, verified, otp_hash, otp_expires_at, created_at, updated_at
FROM users
WHERE id = $1
`

func (s *DB) GetUserByID(ctx context.Context, id int64) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByID")
	defer func() { s.endSpan(span, err) }()

	user, err := s.scanUser(s.conn.QueryRow(ctx, getUserByIDQuery, id))
	if err != nil {
		return nil, s.mapError(err)
	}

	return user, nil
}

type row interface {
	Scan(dest ...any) error
}

func (s *DB) scanUser(r row) (*entity.User, error) {
	var (
		user         entity.User
		passwordHash pgtype.Text
		otpHash      pgtype.Text
		otpExpiresAt pgtype.Timestamptz
	)

	err := r.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&passwordHash,
		&user.Verified,
		&otpHash,
		&otpExpiresAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = passwordHash.String
	user.OTPHash = otpHash.String
	if otpExpiresAt.Valid {
		user.OTPExpiresAt = otpExpiresAt.Time
	}

	return &user, nil
}
