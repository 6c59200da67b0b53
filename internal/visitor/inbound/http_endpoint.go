package inbound

import (
	"time"

	"github.com/shandysiswandi/studytrack/internal/pkg/router"
	"github.com/shandysiswandi/studytrack/internal/visitor/usecase"
)

// HTTPEndpoint exposes HTTP handlers for anonymous visitor accounts.
type HTTPEndpoint struct {
	uc uc
}

// Register mints a new visitor identity.
// @Summary Register visitor
// @Description Creates an anonymous visitor identity. The client stores the returned ID locally.
// @Tags Visitor
// @Produce json
// @Success 200 {object} router.successResponse{data=RegisterResponse} "New visitor"
// @Router /api/visitor/register [post]
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	resp, err := h.uc.Register(r.Context())
	if err != nil {
		return nil, err
	}

	return RegisterResponse{
		VisitorID: resp.VisitorID,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}, nil
}

// Data returns the visitor record and refreshes its last seen timestamp.
// @Summary Get visitor data
// @Description Returns the visitor record when it exists.
// @Tags Visitor
// @Produce json
// @Param visitor_id path string true "Visitor ID"
// @Success 200 {object} router.successResponse{data=DataResponse} "Visitor record"
// @Failure 404 {object} router.errorResponse "Visitor not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/visitor/data/{visitor_id} [get]
func (h *HTTPEndpoint) Data(r *router.Request) (any, error) {
	resp, err := h.uc.Data(r.Context(), usecase.DataInput{
		VisitorID: r.GetParam("visitor_id"),
	})
	if err != nil {
		return nil, err
	}

	return DataResponse{
		VisitorID:  resp.VisitorID,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		LastSeenAt: resp.LastSeenAt.Format(time.RFC3339),
	}, nil
}

// Purge deletes the visitor and all its data.
// @Summary Purge visitor data
// @Description Deletes the visitor plus every study hour and curriculum record keyed to it.
// @Tags Visitor
// @Produce json
// @Param visitor_id path string true "Visitor ID"
// @Success 200 {object} router.successResponse{data=PurgeResponse} "Deletion counts"
// @Failure 404 {object} router.errorResponse "Visitor not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/visitor/data/{visitor_id} [delete]
func (h *HTTPEndpoint) Purge(r *router.Request) (any, error) {
	resp, err := h.uc.Purge(r.Context(), usecase.PurgeInput{
		VisitorID: r.GetParam("visitor_id"),
	})
	if err != nil {
		return nil, err
	}

	return PurgeResponse{
		StudyHours:     resp.StudyHours,
		CurriculumData: resp.CurriculumData,
	}, nil
}
