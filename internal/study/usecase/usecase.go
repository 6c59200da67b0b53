package usecase

import (
	"context"

	"github.com/shandysiswandi/studytrack/internal/pkg/goerror"
	"github.com/shandysiswandi/studytrack/internal/pkg/instrument"
	"github.com/shandysiswandi/studytrack/internal/pkg/jwt"
	"github.com/shandysiswandi/studytrack/internal/pkg/uid"
	"github.com/shandysiswandi/studytrack/internal/pkg/validator"
	"github.com/shandysiswandi/studytrack/internal/study/entity"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	UpsertDayHours(ctx context.Context, in entity.StudyHour) error
	GetMonthHours(ctx context.Context, owner entity.Owner, year, month int) ([]entity.StudyHour, error)
	GetAllHours(ctx context.Context, owner entity.Owner) ([]entity.StudyHour, error)
	DeleteAllHours(ctx context.Context, owner entity.Owner) (int64, error)
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
	return s.ins.Tracer("study.usecase").Start(ctx, name)
}

// resolveOwner picks the record owner for an operation. Visitor routes carry
// an explicit visitor ID; user routes rely on the authenticated claims.
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
