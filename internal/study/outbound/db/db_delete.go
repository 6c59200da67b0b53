package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shandysiswandi/studytrack/internal/study/entity"
)

const deleteAllHoursUserQuery = `DELETE FROM study_hours WHERE user_id = $1`

const deleteAllHoursVisitorQuery = `DELETE FROM study_hours WHERE visitor_id = $1`

func (s *DB) DeleteAllHours(ctx context.Context, owner entity.Owner) (_ int64, err error) {
	ctx, span := s.startSpan(ctx, "DeleteAllHours")
	defer func() { s.endSpan(span, err) }()

	var tag pgconn.CommandTag
	if owner.IsUser() {
		tag, err = s.conn.Exec(ctx, deleteAllHoursUserQuery, owner.UserID)
	} else {
		tag, err = s.conn.Exec(ctx, deleteAllHoursVisitorQuery, owner.VisitorID)
	}
	if err != nil {
		return 0, s.mapError(err)
	}

	return tag.RowsAffected(), nil
}
