package inbound

import (
	"context"

	"github.com/shandysiswandi/studytrack/internal/pkg/router"
	"github.com/shandysiswandi/studytrack/internal/study/usecase"
)

type uc interface {
	SaveDay(ctx context.Context, in usecase.SaveDayInput) (*usecase.SaveDayOutput, error)
	Month(ctx context.Context, in usecase.MonthInput) (*usecase.MonthOutput, error)
	All(ctx context.Context, in usecase.AllInput) (*usecase.AllOutput, error)
	DeleteAll(ctx context.Context, in usecase.DeleteAllInput) (*usecase.DeleteAllOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// User routes (need authenticated)
	r.POST("/api/study-hours/save-day", end.SaveDay)
	r.GET("/api/study-hours/month/:month/:year", end.Month)
	r.GET("/api/study-hours/all", end.All)
	r.DELETE("/api/study-hours/all", end.DeleteAll)

	// Visitor routes (public, keyed by visitor id)
	r.POST("/api/study-hours/visitor/save-day", end.VisitorSaveDay)
	r.GET("/api/study-hours/visitor/:visitor_id/month/:month/:year", end.VisitorMonth)
	r.GET("/api/study-hours/visitor/:visitor_id/all", end.VisitorAll)
	r.DELETE("/api/study-hours/visitor/:visitor_id/all", end.VisitorDeleteAll)
}
