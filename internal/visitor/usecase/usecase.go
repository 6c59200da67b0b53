package usecase

import (
	"context"

	"github.com/shandysiswandi/studytrack/internal/pkg/instrument"
	"github.com/shandysiswandi/studytrack/internal/pkg/uid"
	"github.com/shandysiswandi/studytrack/internal/pkg/validator"
	"github.com/shandysiswandi/studytrack/internal/visitor/entity"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	CreateVisitor(ctx context.Context, id string) (*entity.Visitor, error)
	TouchVisitor(ctx context.Context, id string) (*entity.Visitor, error)
	PurgeVisitor(ctx context.Context, id string) (*entity.PurgeResult, error)
}

type Usecase struct {
	repoDB    repoDB
	validator validator.Validator
	uid       uid.StringID
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	Validator  validator.Validator
	UID        uid.StringID
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		validator: dep.Validator,
		uid:       dep.UID,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("visitor.usecase").Start(ctx, name)
}
