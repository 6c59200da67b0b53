package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/studytrack/internal/pkg/goerror"
)

type DeleteAllInput struct {
	VisitorID string `validate:"omitempty,uuid"`
}

type DeleteAllOutput struct {
	Deleted int64
}

func (s *Usecase) DeleteAll(ctx context.Context, in DeleteAllInput) (*DeleteAllOutput, error) {
	ctx, span := s.startSpan(ctx, "DeleteAll")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	owner, err := s.resolveOwner(ctx, in.VisitorID)
	if err != nil {
		return nil, err
	}

	deleted, err := s.repoDB.DeleteAllHours(ctx, owner)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete all hours", "owner", owner, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &DeleteAllOutput{Deleted: deleted}, nil
}
