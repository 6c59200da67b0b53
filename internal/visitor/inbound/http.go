package inbound

import (
	"context"

	"github.com/shandysiswandi/studytrack/internal/pkg/router"
	"github.com/shandysiswandi/studytrack/internal/visitor/usecase"
)

type uc interface {
	Register(ctx context.Context) (*usecase.RegisterOutput, error)
	Data(ctx context.Context, in usecase.DataInput) (*usecase.DataOutput, error)
	Purge(ctx context.Context, in usecase.PurgeInput) (*usecase.PurgeOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/visitor/register", end.Register)
	r.GET("/api/visitor/data/:visitor_id", end.Data)
	r.DELETE("/api/visitor/data/:visitor_id", end.Purge)
}
