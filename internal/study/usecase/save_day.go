package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/studytrack/internal/pkg/goerror"
	"github.com/shandysiswandi/studytrack/internal/study/entity"
)

type SaveDayInput struct {
	VisitorID string  `validate:"omitempty,uuid"`
	Year      int     `validate:"required,gte=2000,lte=2100"`
	Month     int     `validate:"required,gte=1,lte=12"`
	Day       int     `validate:"required,gte=1,lte=31"`
	Hours     float64 `validate:"gte=0,lte=24"`
}

type SaveDayOutput struct {
	Year  int
	Month int
	Day   int
	Hours float64
}

func (s *Usecase) SaveDay(ctx context.Context, in SaveDayInput) (*SaveDayOutput, error) {
	ctx, span := s.startSpan(ctx, "SaveDay")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	owner, err := s.resolveOwner(ctx, in.VisitorID)
	if err != nil {
		return nil, err
	}

	if err := s.repoDB.UpsertDayHours(ctx, entity.StudyHour{
		ID:    s.uid.Generate(),
		Owner: owner,
		Year:  in.Year,
		Month: in.Month,
		Day:   in.Day,
		Hours: in.Hours,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo upsert day hours", "owner", owner, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &SaveDayOutput{
		Year:  in.Year,
		Month: in.Month,
		Day:   in.Day,
		Hours: in.Hours,
	}, nil
}
