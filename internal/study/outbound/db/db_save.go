package db

import (
	"context"

	"github.com/shandysiswandi/studytrack/internal/study/entity"
)

const upsertUserDayQuery = `
INSERT INTO study_hours (id, user_id, year, month, day, hours)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id, year, month, day) WHERE user_id IS NOT NULL
DO UPDATE SET hours = EXCLUDED.hours, updated_at = now()
`

const upsertVisitorDayQuery = `
INSERT INTO study_hours (id, visitor_id, year, month, day, hours)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (visitor_id, year, month, day) WHERE visitor_id IS NOT NULL
DO UPDATE SET hours = EXCLUDED.hours, updated_at = now()
`

func (s *DB) UpsertDayHours(ctx context.Context, in entity.StudyHour) (err error) {
	ctx, span := s.startSpan(ctx, "UpsertDayHours")
	defer func() { s.endSpan(span, err) }()

	if in.Owner.IsUser() {
		_, err = s.conn.Exec(ctx, upsertUserDayQuery,
			in.ID, in.Owner.UserID, in.Year, in.Month, in.Day, in.Hours)
	} else {
		_, err = s.conn.Exec(ctx, upsertVisitorDayQuery,
			in.ID, in.Owner.VisitorID, in.Year, in.Month, in.Day, in.Hours)
	}

	err = s.mapError(err)
	return err
}
