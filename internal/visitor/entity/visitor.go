package entity

import "time"

// Visitor is an anonymous account keyed by a client-held UUID.
type Visitor struct {
	ID         string
	CreatedAt  time.Time
	LastSeenAt time.Time
}

// PurgeResult reports how many rows each table dropped when a visitor
// erased their data.
type PurgeResult struct {
	StudyHours     int64
	CurriculumData int64
	Visitors       int64
}
