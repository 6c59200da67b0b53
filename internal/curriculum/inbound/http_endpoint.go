package inbound

import (
	"github.com/shandysiswandi/studytrack/internal/curriculum/entity"
	"github.com/shandysiswandi/studytrack/internal/curriculum/usecase"
	"github.com/shandysiswandi/studytrack/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for curriculum progress tracking.
type HTTPEndpoint struct {
	uc uc
}

// Save upserts the authenticated user's progress on one topic.
// @Summary Save topic progress
// @Description Creates or updates the watched/revised/tested flags for one curriculum topic.
// @Tags Curriculum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SaveRequest true "Topic payload"
// @Success 200 {object} router.successResponse{data=SaveResponse} "Saved record"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/curriculum/save [post]
func (h *HTTPEndpoint) Save(r *router.Request) (any, error) {
	var req SaveRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	return h.save(r, usecase.SaveInput{
		Subject: req.Subject,
		Topic:   req.Topic,
		Watched: req.Watched,
		Revised: req.Revised,
		Tested:  req.Tested,
	})
}

// VisitorSave upserts a visitor's progress on one topic.
// @Summary Save visitor topic progress
// @Description Creates or updates the watched/revised/tested flags for one curriculum topic of an anonymous visitor.
// @Tags Curriculum, Visitor
// @Accept json
// @Produce json
// @Param request body VisitorSaveRequest true "Topic payload with visitor id"
// @Success 200 {object} router.successResponse{data=SaveResponse} "Saved record"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/curriculum/visitor/save [post]
func (h *HTTPEndpoint) VisitorSave(r *router.Request) (any, error) {
	var req VisitorSaveRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	return h.save(r, usecase.SaveInput{
		VisitorID: req.VisitorID,
		Subject:   req.Subject,
		Topic:     req.Topic,
		Watched:   req.Watched,
		Revised:   req.Revised,
		Tested:    req.Tested,
	})
}

func (h *HTTPEndpoint) save(r *router.Request, in usecase.SaveInput) (any, error) {
	resp, err := h.uc.Save(r.Context(), in)
	if err != nil {
		return nil, err
	}

	return SaveResponse{
		Subject: resp.Subject,
		Topic:   resp.Topic,
		Watched: resp.Watched,
		Revised: resp.Revised,
		Tested:  resp.Tested,
	}, nil
}

// All returns every topic of the authenticated user with per-subject stats.
// @Summary Get all curriculum progress
// @Description Returns every topic plus completion stats grouped by subject.
// @Tags Curriculum
// @Produce json
// @Security BearerAuth
// @Success 200 {object} router.successResponse{data=AllResponse} "Records and stats"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Router /api/curriculum/all [get]
func (h *HTTPEndpoint) All(r *router.Request) (any, error) {
	return h.all(r, "")
}

// VisitorAll returns every topic of a visitor with per-subject stats.
// @Summary Get all visitor curriculum progress
// @Description Returns every topic plus completion stats grouped by subject.
// @Tags Curriculum, Visitor
// @Produce json
// @Param visitor_id path string true "Visitor ID"
// @Success 200 {object} router.successResponse{data=AllResponse} "Records and stats"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/curriculum/visitor/{visitor_id}/all [get]
func (h *HTTPEndpoint) VisitorAll(r *router.Request) (any, error) {
	return h.all(r, r.GetParam("visitor_id"))
}

func (h *HTTPEndpoint) all(r *router.Request, visitorID string) (any, error) {
	resp, err := h.uc.All(r.Context(), usecase.AllInput{VisitorID: visitorID})
	if err != nil {
		return nil, err
	}

	subjects := make([]SubjectStats, 0, len(resp.Subjects))
	for _, st := range resp.Subjects {
		subjects = append(subjects, SubjectStats{
			Subject:           st.Subject,
			Topics:            st.Topics,
			Watched:           st.Watched,
			Revised:           st.Revised,
			Tested:            st.Tested,
			CompletionPercent: st.CompletionPercent,
		})
	}

	return AllResponse{
		Records:  topicRecords(resp.Records),
		Subjects: subjects,
		Overall: OverallStats{
			Subjects:          resp.Overall.Subjects,
			Topics:            resp.Overall.Topics,
			Watched:           resp.Overall.Watched,
			Revised:           resp.Overall.Revised,
			Tested:            resp.Overall.Tested,
			CompletionPercent: resp.Overall.CompletionPercent,
		},
	}, nil
}

// Subject returns the authenticated user's topics within one subject.
// @Summary Get curriculum subject
// @Description Returns every topic of one subject.
// @Tags Curriculum
// @Produce json
// @Security BearerAuth
// @Param subject path string true "Subject name"
// @Success 200 {object} router.successResponse{data=SubjectResponse} "Subject records"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Router /api/curriculum/subject/{subject} [get]
func (h *HTTPEndpoint) Subject(r *router.Request) (any, error) {
	return h.subject(r, "")
}

// VisitorSubject returns a visitor's topics within one subject.
// @Summary Get visitor curriculum subject
// @Description Returns every topic of one subject for the given visitor.
// @Tags Curriculum, Visitor
// @Produce json
// @Param visitor_id path string true "Visitor ID"
// @Param subject path string true "Subject name"
// @Success 200 {object} router.successResponse{data=SubjectResponse} "Subject records"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/curriculum/visitor/{visitor_id}/subject/{subject} [get]
func (h *HTTPEndpoint) VisitorSubject(r *router.Request) (any, error) {
	return h.subject(r, r.GetParam("visitor_id"))
}

func (h *HTTPEndpoint) subject(r *router.Request, visitorID string) (any, error) {
	resp, err := h.uc.Subject(r.Context(), usecase.SubjectInput{
		VisitorID: visitorID,
		Subject:   r.GetParam("subject"),
	})
	if err != nil {
		return nil, err
	}

	return SubjectResponse{
		Subject: resp.Subject,
		Records: topicRecords(resp.Records),
	}, nil
}

func topicRecords(items []entity.Topic) []TopicRecord {
	records := make([]TopicRecord, 0, len(items))
	for _, t := range items {
		records = append(records, TopicRecord{
			Subject: t.Subject,
			Topic:   t.Topic,
			Watched: t.Watched,
			Revised: t.Revised,
			Tested:  t.Tested,
		})
	}
	return records
}
