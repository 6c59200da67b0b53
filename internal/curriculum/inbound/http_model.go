package inbound

type SaveRequest struct {
	Subject string `json:"subject"`
	Topic   string `json:"topic"`
	Watched bool   `json:"watched"`
	Revised bool   `json:"revised"`
	Tested  bool   `json:"tested"`
}

type VisitorSaveRequest struct {
	VisitorID string `json:"visitor_id"`
	Subject   string `json:"subject"`
	Topic     string `json:"topic"`
	Watched   bool   `json:"watched"`
	Revised   bool   `json:"revised"`
	Tested    bool   `json:"tested"`
}

type SaveResponse struct {
	Subject string `json:"subject"`
	Topic   string `json:"topic"`
	Watched bool   `json:"watched"`
	Revised bool   `json:"revised"`
	Tested  bool   `json:"tested"`
}

func (SaveResponse) Message() string {
	return "Curriculum progress saved."
}

type TopicRecord struct {
	Subject string `json:"subject"`
	Topic   string `json:"topic"`
	Watched bool   `json:"watched"`
	Revised bool   `json:"revised"`
	Tested  bool   `json:"tested"`
}

type SubjectStats struct {
	Subject           string  `json:"subject"`
	Topics            int     `json:"topics"`
	Watched           int     `json:"watched"`
	Revised           int     `json:"revised"`
	Tested            int     `json:"tested"`
	CompletionPercent float64 `json:"completion_percent"`
}

type OverallStats struct {
	Subjects          int     `json:"subjects"`
	Topics            int     `json:"topics"`
	Watched           int     `json:"watched"`
	Revised           int     `json:"revised"`
	Tested            int     `json:"tested"`
	CompletionPercent float64 `json:"completion_percent"`
}

type AllResponse struct {
	Records  []TopicRecord  `json:"records"`
	Subjects []SubjectStats `json:"subjects"`
	Overall  OverallStats   `json:"overall"`
}

type SubjectResponse struct {
	Subject string        `json:"subject"`
	Records []TopicRecord `json:"records"`
}
