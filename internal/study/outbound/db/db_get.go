package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/studytrack/internal/study/entity"
)

const getMonthHoursUserQuery = `
SELECT id, year, month, day, hours, created_at, updated_at
FROM study_hours
WHERE user_id = $1 AND year = $2 AND month = $3
ORDER BY day
`

const getMonthHoursVisitorQuery = `
SELECT id, year, month, day, hours, created_at, updated_at
FROM study_hours
WHERE visitor_id = $1 AND year = $2 AND month = $3
ORDER BY day
`

func (s *DB) GetMonthHours(ctx context.Context, owner entity.Owner, year, month int) (_ []entity.StudyHour, err error) {
	ctx, span := s.startSpan(ctx, "GetMonthHours")
	defer func() { s.endSpan(span, err) }()

	var rows pgx.Rows
	if owner.IsUser() {
		rows, err = s.conn.Query(ctx, getMonthHoursUserQuery, owner.UserID, year, month)
	} else {
		rows, err = s.conn.Query(ctx, getMonthHoursVisitorQuery, owner.VisitorID, year, month)
	}
	if err != nil {
		return nil, s.mapError(err)
	}

	items, err := s.collectHours(rows, owner)
	if err != nil {
		return nil, s.mapError(err)
	}

	return items, nil
}

const getAllHoursUserQuery = `
SELECT id, year, month, day, hours, created_at, updated_at
FROM study_hours
WHERE user_id = $1
ORDER BY year, month, day
`

const getAllHoursVisitorQuery = `
SELECT id, year, month, day, hours, created_at, updated_at
FROM study_hours
WHERE visitor_id = $1
ORDER BY year, month, day
`

func (s *DB) GetAllHours(ctx context.Context, owner entity.Owner) (_ []entity.StudyHour, err error) {
	ctx, span := s.startSpan(ctx, "GetAllHours")
	defer func() { s.endSpan(span, err) }()

	var rows pgx.Rows
	if owner.IsUser() {
		rows, err = s.conn.Query(ctx, getAllHoursUserQuery, owner.UserID)
	} else {
		rows, err = s.conn.Query(ctx, getAllHoursVisitorQuery, owner.VisitorID)
	}
	if err != nil {
		return nil, s.mapError(err)
	}

	items, err := s.collectHours(rows, owner)
	if err != nil {
		return nil, s.mapError(err)
	}

	return items, nil
}

func (s *DB) collectHours(rows pgx.Rows, owner entity.Owner) ([]entity.StudyHour, error) {
	defer rows.Close()

	items := make([]entity.StudyHour, 0)
	for rows.Next() {
		item := entity.StudyHour{Owner: owner}
		if err := rows.Scan(
			&item.ID,
			&item.Year,
			&item.Month,
			&item.Day,
			&item.Hours,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
