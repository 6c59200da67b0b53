package usecase

import (
	"context"

	"github.com/shandysiswandi/studytrack/internal/curriculum/entity"
	"github.com/shandysiswandi/studytrack/internal/pkg/goerror"
	"github.com/shandysiswandi/studytrack/internal/pkg/instrument"
	"github.com/shandysiswandi/studytrack/internal/pkg/jwt"
	"github.com/shandysiswandi/studytrack/internal/pkg/uid"
	"github.com/shandysiswandi/studytrack/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	UpsertTopic(ctx context.Context, in entity.Topic) error
	GetAllTopics(ctx context.Context, owner entity.Owner) ([]entity.Topic, error)
	GetSubjectTopics(ctx context.Context, owner entity.Owner, subject string) ([]entity.Topic, error)
}

type Usecase struct {
	repoDB    repoDB
	validator validator.Validator
	uid       uid.NumberID
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	Validator  validator.Validator
	UID        uid.NumberID
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
	return s.ins.Tracer("curriculum.usecase").Start(ctx, name)
}

func (s *Usecase) resolveOwner(ctx context.Context, visitorID string) (entity.Owner, error) {
	if visitorID != "" {
		return entity.Owner{VisitorID: visitorID}, nil
	}

	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return entity.Owner{}, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	return entity.Owner{UserID: clm.UserID}, nil
}
