package inbound

type SaveDayRequest struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Day   int     `json:"day"`
	Hours float64 `json:"hours"`
}

type VisitorSaveDayRequest struct {
	VisitorID string  `json:"visitor_id"`
	Year      int     `json:"year"`
	Month     int     `json:"month"`
	Day       int     `json:"day"`
	Hours     float64 `json:"hours"`
}

type SaveDayResponse struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Day   int     `json:"day"`
	Hours float64 `json:"hours"`
}

func (SaveDayResponse) Message() string {
	return "Study hours saved."
}

type DayRecord struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Day   int     `json:"day"`
	Hours float64 `json:"hours"`
}

type MonthStats struct {
	TotalHours      float64 `json:"total_hours"`
	AverageHours    float64 `json:"average_hours"`
	ProgressPercent float64 `json:"progress_percent"`
	DaysRecorded    int     `json:"days_recorded"`
	DaysInMonth     int     `json:"days_in_month"`
	TargetHours     float64 `json:"target_hours"`
}

type MonthResponse struct {
	Records []DayRecord `json:"records"`
	Stats   MonthStats  `json:"stats"`
}

type AllResponse struct {
	Records []DayRecord `json:"records"`
}

type DeleteAllResponse struct {
	Deleted int64 `json:"deleted"`
}

func (DeleteAllResponse) Message() string {
	return "Study hours deleted."
}
