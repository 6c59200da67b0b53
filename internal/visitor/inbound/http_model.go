package inbound

type RegisterResponse struct {
	VisitorID string `json:"visitor_id"`
	CreatedAt string `json:"created_at"`
}

func (RegisterResponse) Message() string {
	return "Visitor registered."
}

type DataResponse struct {
	VisitorID  string `json:"visitor_id"`
	CreatedAt  string `json:"created_at"`
	LastSeenAt string `json:"last_seen_at"`
}

type PurgeResponse struct {
	StudyHours     int64 `json:"study_hours"`
	CurriculumData int64 `json:"curriculum_data"`
}

func (PurgeResponse) Message() string {
	return "Visitor data deleted."
}
