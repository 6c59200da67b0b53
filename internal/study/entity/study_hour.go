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

// IsZero reports whether neither side of the owner is set.
func (o Owner) IsZero() bool {
	return o.UserID == 0 && o.VisitorID == ""
}

type StudyHour struct {
	ID        int64
	Owner     Owner
	Year      int
	Month     int
	Day       int
	Hours     float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MonthStats summarizes one month of recorded study hours against a fixed
// target of 7 hours per day.
type MonthStats struct {
	TotalHours      float64
	AverageHours    float64
	ProgressPercent float64
	DaysRecorded    int
	DaysInMonth     int
	TargetHours     float64
}

// February is always counted as 28 days for the monthly target.
var daysInMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of target days for the given month, or 0
// when the month is out of range.
func DaysInMonth(month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	return daysInMonth[month]
}

// HoursPerDayTarget is the daily study goal used for progress calculation.
const HoursPerDayTarget = 7.0
