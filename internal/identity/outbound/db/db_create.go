package db

import (
	"context"

	"github.com/shandysiswandi/studytrack/internal/identity/entity"
)

const createUserQuery = `
INSERT INTO users (id, email, name, password_hash, verified)
VALUES ($1, $2, $3, $4, $5)
`

func (s *DB) CreateUser(ctx context.Context, in entity.NewUser) (err error) {
	ctx, span := s.startSpan(ctx, "CreateUser")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, createUserQuery, in.ID, in.Email, in.Name, in.PasswordHash, in.Verified)
	err = s.mapError(err)
	return err
}
