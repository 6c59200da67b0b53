package db

import (
	"context"

	"github.com/shandysiswandi/studytrack/internal/visitor/entity"
)

const touchVisitorQuery = `
UPDATE visitors
SET last_seen_at = now()
WHERE id = $1
RETURNING id, created_at, last_seen_at
`

// TouchVisitor refreshes last_seen_at and returns the visitor.
func (s *DB) TouchVisitor(ctx context.Context, id string) (_ *entity.Visitor, err error) {
	ctx, span := s.startSpan(ctx, "TouchVisitor")
	defer func() { s.endSpan(span, err) }()

	var v entity.Visitor
	err = s.conn.QueryRow(ctx, touchVisitorQuery, id).Scan(&v.ID, &v.CreatedAt, &v.LastSeenAt)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &v, nil
}
