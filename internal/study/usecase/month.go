package usecase

import (
	"context"
	"log/slog"
	"math"

	"github.com/samber/lo"
	"github.com/shandysiswandi/studytrack/internal/pkg/goerror"
	"github.com/shandysiswandi/studytrack/internal/study/entity"
)

type MonthInput struct {
	VisitorID string `validate:"omitempty,uuid"`
	Year      int    `validate:"required,gte=2000,lte=2100"`
	Month     int    `validate:"required,gte=1,lte=12"`
}

type MonthOutput struct {
	Records []entity.StudyHour
	Stats   entity.MonthStats
}

func (s *Usecase) Month(ctx context.Context, in MonthInput) (*MonthOutput, error) {
	ctx, span := s.startSpan(ctx, "Month")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	owner, err := s.resolveOwner(ctx, in.VisitorID)
	if err != nil {
		return nil, err
	}

	records, err := s.repoDB.GetMonthHours(ctx, owner, in.Year, in.Month)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get month hours", "owner", owner, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &MonthOutput{
		Records: records,
		Stats:   monthStats(records, in.Month),
	}, nil
}

func monthStats(records []entity.StudyHour, month int) entity.MonthStats {
	days := entity.DaysInMonth(month)
	target := entity.HoursPerDayTarget * float64(days)

	total := lo.SumBy(records, func(r entity.StudyHour) float64 { return r.Hours })

	average := 0.0
	if len(records) > 0 {
		average = total / float64(len(records))
	}

	progress := 0.0
	if target > 0 {
		progress = total / target * 100
	}

	return entity.MonthStats{
		TotalHours:      round2(total),
		AverageHours:    round2(average),
		ProgressPercent: round2(progress),
		DaysRecorded:    len(records),
		DaysInMonth:     days,
		TargetHours:     target,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
