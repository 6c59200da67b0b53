package entity

import "time"

// Owner identifies who a record belongs to. Exactly one side is set: a
// registered user's numeric ID or an anonymous visitor's string ID.
type Owner struct {
	UserID    int64
	VisitorID string
}

// IsUser reports whether the owner is a registered user.
func (o Owner) IsUser() bool {
	return o.UserID != 0
}

// Topic is one curriculum item and its study progress flags.
type Topic struct {
	ID        int64
	Owner     Owner
	Subject   string
	Topic     string
	Watched   bool
	Revised   bool
	Tested    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SubjectStats summarizes progress within one subject. Completion is the
// share of set flags out of topics times three.
type SubjectStats struct {
	Subject           string
	Topics            int
	Watched           int
	Revised           int
	Tested            int
	CompletionPercent float64
}

// OverallStats aggregates every subject of an owner.
type OverallStats struct {
	Subjects          int
	Topics            int
	Watched           int
	Revised           int
	Tested            int
	CompletionPercent float64
}
