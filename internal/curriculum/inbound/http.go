package inbound

import (
	"context"

	"github.com/shandysiswandi/studytrack/internal/curriculum/usecase"
	"github.com/shandysiswandi/studytrack/internal/pkg/router"
)

type uc interface {
	Save(ctx context.Context, in usecase.SaveInput) (*usecase.SaveOutput, error)
	All(ctx context.Context, in usecase.AllInput) (*usecase.AllOutput, error)
	Subject(ctx context.Context, in usecase.SubjectInput) (*usecase.SubjectOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// User routes (need authenticated)
	r.POST("/api/curriculum/save", end.Save)
	r.GET("/api/curriculum/all", end.All)
	r.GET("/api/curriculum/subject/:subject", end.Subject)

	// Visitor routes (public, keyed by visitor id)
	r.POST("/api/curriculum/visitor/save", end.VisitorSave)
	r.GET("/api/curriculum/visitor/:visitor_id/all", end.VisitorAll)
	r.GET("/api/curriculum/visitor/:visitor_id/subject/:subject", end.VisitorSubject)
}
