package inbound

import (
	"strconv"

	"github.com/shandysiswandi/studytrack/internal/pkg/goerror"
	"github.com/shandysiswandi/studytrack/internal/pkg/router"
	"github.com/shandysiswandi/studytrack/internal/study/usecase"
)

// HTTPEndpoint exposes HTTP handlers for study hour tracking.
type HTTPEndpoint struct {
	uc uc
}

func paramInt(r *router.Request, key string) (int, error) {
	v, err := strconv.Atoi(r.GetParam(key))
	if err != nil {
		return 0, goerror.NewInvalidFormat(key + " must be a number")
	}
	return v, nil
}

// SaveDay upserts the authenticated user's hours for one day.
// @Summary Save a day's study hours
// @Description Creates or updates the recorded hours for one calendar day.
// @Tags Study
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SaveDayRequest true "Day payload"
// @Success 200 {object} router.successResponse{data=SaveDayResponse} "Saved record"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/study-hours/save-day [post]
func (h *HTTPEndpoint) SaveDay(r *router.Request) (any, error) {
	var req SaveDayRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	return h.saveDay(r, usecase.SaveDayInput{
		Year:  req.Year,
		Month: req.Month,
		Day:   req.Day,
		Hours: req.Hours,
	})
}

// VisitorSaveDay upserts a visitor's hours for one day.
// @Summary Save a visitor day's study hours
// @Description Creates or updates the recorded hours for one calendar day of an anonymous visitor.
// @Tags Study, Visitor
// @Accept json
// @Produce json
// @Param request body VisitorSaveDayRequest true "Day payload with visitor id"
// @Success 200 {object} router.successResponse{data=SaveDayResponse} "Saved record"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/study-hours/visitor/save-day [post]
func (h *HTTPEndpoint) VisitorSaveDay(r *router.Request) (any, error) {
	var req VisitorSaveDayRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	return h.saveDay(r, usecase.SaveDayInput{
		VisitorID: req.VisitorID,
		Year:      req.Year,
		Month:     req.Month,
		Day:       req.Day,
		Hours:     req.Hours,
	})
}

func (h *HTTPEndpoint) saveDay(r *router.Request, in usecase.SaveDayInput) (any, error) {
	resp, err := h.uc.SaveDay(r.Context(), in)
	if err != nil {
		return nil, err
	}

	return SaveDayResponse{
		Year:  resp.Year,
		Month: resp.Month,
		Day:   resp.Day,
		Hours: resp.Hours,
	}, nil
}

// Month returns the authenticated user's records and stats for one month.
// @Summary Get a month of study hours
// @Description Returns the recorded days plus totals, averages and progress against the monthly target.
// @Tags Study
// @Produce json
// @Security BearerAuth
// @Param month path int true "Month (1-12)"
// @Param year path int true "Year"
// @Success 200 {object} router.successResponse{data=MonthResponse} "Month records and stats"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/study-hours/month/{month}/{year} [get]
func (h *HTTPEndpoint) Month(r *router.Request) (any, error) {
	return h.month(r, "")
}

// VisitorMonth returns a visitor's records and stats for one month.
// @Summary Get a visitor month of study hours
// @Description Returns the recorded days plus totals, averages and progress against the monthly target.
// @Tags Study, Visitor
// @Produce json
// @Param visitor_id path string true "Visitor ID"
// @Param month path int true "Month (1-12)"
// @Param year path int true "Year"
// @Success 200 {object} router.successResponse{data=MonthResponse} "Month records and stats"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/study-hours/visitor/{visitor_id}/month/{month}/{year} [get]
func (h *HTTPEndpoint) VisitorMonth(r *router.Request) (any, error) {
	return h.month(r, r.GetParam("visitor_id"))
}

func (h *HTTPEndpoint) month(r *router.Request, visitorID string) (any, error) {
	month, err := paramInt(r, "month")
	if err != nil {
		return nil, err
	}
	year, err := paramInt(r, "year")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.Month(r.Context(), usecase.MonthInput{
		VisitorID: visitorID,
		Year:      year,
		Month:     month,
	})
	if err != nil {
		return nil, err
	}

	records := make([]DayRecord, 0, len(resp.Records))
	for _, rec := range resp.Records {
		records = append(records, DayRecord{
			Year:  rec.Year,
			Month: rec.Month,
			Day:   rec.Day,
			Hours: rec.Hours,
		})
	}

	return MonthResponse{
		Records: records,
		Stats: MonthStats{
			TotalHours:      resp.Stats.TotalHours,
			AverageHours:    resp.Stats.AverageHours,
			ProgressPercent: resp.Stats.ProgressPercent,
			DaysRecorded:    resp.Stats.DaysRecorded,
			DaysInMonth:     resp.Stats.DaysInMonth,
			TargetHours:     resp.Stats.TargetHours,
		},
	}, nil
}

// All returns every study hour record of the authenticated user.
// @Summary Get all study hours
// @Description Returns every recorded day for the authenticated user.
// @Tags Study
// @Produce json
// @Security BearerAuth
// @Success 200 {object} router.successResponse{data=AllResponse} "All records"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Router /api/study-hours/all [get]
func (h *HTTPEndpoint) All(r *router.Request) (any, error) {
	return h.all(r, "")
}

// VisitorAll returns every study hour record of a visitor.
// @Summary Get all visitor study hours
// @Description Returns every recorded day for the given visitor.
// @Tags Study, Visitor
// @Produce json
// @Param visitor_id path string true "Visitor ID"
// @Success 200 {object} router.successResponse{data=AllResponse} "All records"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/study-hours/visitor/{visitor_id}/all [get]
func (h *HTTPEndpoint) VisitorAll(r *router.Request) (any, error) {
	return h.all(r, r.GetParam("visitor_id"))
}

func (h *HTTPEndpoint) all(r *router.Request, visitorID string) (any, error) {
	resp, err := h.uc.All(r.Context(), usecase.AllInput{VisitorID: visitorID})
	if err != nil {
		return nil, err
	}

	records := make([]DayRecord, 0, len(resp.Records))
	for _, rec := range resp.Records {
		records = append(records, DayRecord{
			Year:  rec.Year,
			Month: rec.Month,
			Day:   rec.Day,
			Hours: rec.Hours,
		})
	}

	return AllResponse{Records: records}, nil
}

// DeleteAll removes every study hour record of the authenticated user.
// @Summary Delete all study hours
// @Description Removes every recorded day for the authenticated user and returns the deleted count.
// @Tags Study
// @Produce json
// @Security BearerAuth
// @Success 200 {object} router.successResponse{data=DeleteAllResponse} "Delete result"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Router /api/study-hours/all [delete]
func (h *HTTPEndpoint) DeleteAll(r *router.Request) (any, error) {
	return h.deleteAll(r, "")
}

// VisitorDeleteAll removes every study hour record of a visitor.
// @Summary Delete all visitor study hours
// @Description Removes every recorded day for the given visitor and returns the deleted count.
// @Tags Study, Visitor
// @Produce json
// @Param visitor_id path string true "Visitor ID"
// @Success 200 {object} router.successResponse{data=DeleteAllResponse} "Delete result"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/study-hours/visitor/{visitor_id}/all [delete]
func (h *HTTPEndpoint) VisitorDeleteAll(r *router.Request) (any, error) {
	return h.deleteAll(r, r.GetParam("visitor_id"))
}

func (h *HTTPEndpoint) deleteAll(r *router.Request, visitorID string) (any, error) {
	resp, err := h.uc.DeleteAll(r.Context(), usecase.DeleteAllInput{VisitorID: visitorID})
	if err != nil {
		return nil, err
	}

	return DeleteAllResponse{Deleted: resp.Deleted}, nil
}
