package db

import (
	"context"

	"github.com/shandysiswandi/studytrack/internal/curriculum/entity"
)

const upsertUserTopicQuery = `
INSERT INTO curriculum_data (id, user_id, subject, topic, watched, revised, tested)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (user_id, subject, topic) WHERE user_id IS NOT NULL
DO UPDATE SET watched = EXCLUDED.watched, revised = EXCLUDED.revised,
              tested = EXCLUDED.tested, updated_at = now()
`

const upsertVisitorTopicQuery = `
INSERT INTO curriculum_data (id, visitor_id, subject, topic, watched, revised, tested)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (visitor_id, subject, topic) WHERE visitor_id IS NOT NULL
DO UPDATE SET watched = EXCLUDED.watched, revised = EXCLUDED.revised,
              tested = EXCLUDED.tested, updated_at = now()
`

func (s *DB) UpsertTopic(ctx context.Context, in entity.Topic) (err error) {
	ctx, span := s.startSpan(ctx, "UpsertTopic")
	defer func() { s.endSpan(span, err) }()

	if in.Owner.IsUser() {
		_, err = s.conn.Exec(ctx, upsertUserTopicQuery,
			in.ID, in.Owner.UserID, in.Subject, in.Topic, in.Watched, in.Revised, in.Tested)
	} else {
		_, err = s.conn.Exec(ctx, upsertVisitorTopicQuery,
			in.ID, in.Owner.VisitorID, in.Subject, in.Topic, in.Watched, in.Revised, in.Tested)
	}

	err = s.mapError(err)
	return err
}
