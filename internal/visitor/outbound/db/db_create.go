package db

import (
	"context"

	"github.com/shandysiswandi/studytrack/internal/visitor/entity"
)

const createVisitorQuery = `
INSERT INTO visitors (id)
VALUES ($1)
RETURNING id, created_at, last_seen_at
`

func (s *DB) CreateVisitor(ctx context.Context, id string) (_ *entity.Visitor, err error) {
	ctx, span := s.startSpan(ctx, "CreateVisitor")
	defer func() { s.endSpan(span, err) }()

	var v entity.Visitor
	err = s.conn.QueryRow(ctx, createVisitorQuery, id).Scan(&v.ID, &v.CreatedAt, &v.LastSeenAt)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &v, nil
}
