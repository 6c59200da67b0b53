package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/studytrack/internal/pkg/goerror"
	"github.com/shandysiswandi/studytrack/internal/study/entity"
)

type AllInput struct {
	VisitorID string `validate:"omitempty,uuid"`
}

type AllOutput struct {
	Records []entity.StudyHour
}

func (s *Usecase) All(ctx context.Context, in AllInput) (*AllOutput, error) {
	ctx, span := s.startSpan(ctx, "All")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	owner, err := s.resolveOwner(ctx, in.VisitorID)
	if err != nil {
		return nil, err
	}

	records, err := s.repoDB.GetAllHours(ctx, owner)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get all hours", "owner", owner, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &AllOutput{Records: records}, nil
}
