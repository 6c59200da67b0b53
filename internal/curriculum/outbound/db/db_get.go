package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/studytrack/internal/curriculum/entity"
)

const getAllTopicsUserQuery = `
SELECT id, subject, topic, watched, revised, tested, created_at, updated_at
FROM curriculum_data
WHERE user_id = $1
ORDER BY subject, topic
`

const getAllTopicsVisitorQuery = `
SELECT id, subject, topic, watched, revised, tested, created_at, updated_at
FROM curriculum_data
WHERE visitor_id = $1
ORDER BY subject, topic
`

func (s *DB) GetAllTopics(ctx context.Context, owner entity.Owner) (_ []entity.Topic, err error) {
	ctx, span := s.startSpan(ctx, "GetAllTopics")
	defer func() { s.endSpan(span, err) }()

	var rows pgx.Rows
	if owner.IsUser() {
		rows, err = s.conn.Query(ctx, getAllTopicsUserQuery, owner.UserID)
	} else {
		rows, err = s.conn.Query(ctx, getAllTopicsVisitorQuery, owner.VisitorID)
	}
	if err != nil {
		return nil, s.mapError(err)
	}

	items, err := s.collectTopics(rows, owner)
	if err != nil {
		return nil, s.mapError(err)
	}

	return items, nil
}

const getSubjectTopicsUserQuery = `
SELECT id, subject, topic, watched, revised, tested, created_at, updated_at
FROM curriculum_data
WHERE user_id = $1 AND subject = $2
ORDER BY topic
`

const getSubjectTopicsVisitorQuery = `
SELECT id, subject, topic, watched, revised, tested, created_at, updated_at
FROM curriculum_data
WHERE visitor_id = $1 AND subject = $2
ORDER BY topic
`

func (s *DB) GetSubjectTopics(ctx context.Context, owner entity.Owner, subject string) (_ []entity.Topic, err error) {
	ctx, span := s.startSpan(ctx, "GetSubjectTopics")
	defer func() { s.endSpan(span, err) }()

	var rows pgx.Rows
	if owner.IsUser() {
		rows, err = s.conn.Query(ctx, getSubjectTopicsUserQuery, owner.UserID, subject)
	} else {
		rows, err = s.conn.Query(ctx, getSubjectTopicsVisitorQuery, owner.VisitorID, subject)
	}
	if err != nil {
		return nil, s.mapError(err)
	}

	items, err := s.collectTopics(rows, owner)
	if err != nil {
		return nil, s.mapError(err)
	}

	return items, nil
}

func (s *DB) collectTopics(rows pgx.Rows, owner entity.Owner) ([]entity.Topic, error) {
	defer rows.Close()

	items := make([]entity.Topic, 0)
	for rows.Next() {
		item := entity.Topic{Owner: owner}
		if err := rows.Scan(
			&item.ID,
			&item.Subject,
			&item.Topic,
			&item.Watched,
			&item.Revised,
			&item.Tested,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
