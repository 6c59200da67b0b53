package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/shandysiswandi/studytrack/internal/pkg/goerror"
)

type DataInput struct {
	VisitorID string `validate:"required,uuid"`
}

type DataOutput struct {
	VisitorID  string
	CreatedAt  time.Time
	LastSeenAt time.Time
}

// Data looks up a visitor and refreshes its last seen timestamp.
func (s *Usecase) Data(ctx context.Context, in DataInput) (*DataOutput, error) {
	ctx, span := s.startSpan(ctx, "Data")
	defer span.End()

	in.VisitorID = strings.TrimSpace(in.VisitorID)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	v, err := s.repoDB.TouchVisitor(ctx, in.VisitorID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Visitor not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo touch visitor", "visitor_id", in.VisitorID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &DataOutput{
		VisitorID:  v.ID,
		CreatedAt:  v.CreatedAt,
		LastSeenAt: v.LastSeenAt,
	}, nil
}
