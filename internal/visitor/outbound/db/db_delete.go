package db

import (
	"context"

	"github.com/shandysiswandi/studytrack/internal/visitor/entity"
)

const purgeStudyHoursQuery = `DELETE FROM study_hours WHERE visitor_id = $1`
const purgeCurriculumQuery = `DELETE FROM curriculum_data WHERE visitor_id = $1`
const purgeVisitorQuery = `DELETE FROM visitors WHERE id = $1`

// PurgeVisitor removes the visitor row and every record keyed to it in one
// transaction.
func (s *DB) PurgeVisitor(ctx context.Context, id string) (_ *entity.PurgeResult, err error) {
	ctx, span := s.startSpan(ctx, "PurgeVisitor")
	defer func() { s.endSpan(span, err) }()

	tx, err := s.conn.Begin(ctx)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var res entity.PurgeResult

	tag, err := tx.Exec(ctx, purgeStudyHoursQuery, id)
	if err != nil {
		return nil, s.mapError(err)
	}
	res.StudyHours = tag.RowsAffected()

	tag, err = tx.Exec(ctx, purgeCurriculumQuery, id)
	if err != nil {
		return nil, s.mapError(err)
	}
	res.CurriculumData = tag.RowsAffected()

	tag, err = tx.Exec(ctx, purgeVisitorQuery, id)
	if err != nil {
		return nil, s.mapError(err)
	}
	res.Visitors = tag.RowsAffected()

	if err = tx.Commit(ctx); err != nil {
		return nil, s.mapError(err)
	}

	return &res, nil
}
