package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/shandysiswandi/studytrack/internal/pkg/goerror"
)

type RegisterOutput struct {
	VisitorID string
	CreatedAt time.Time
}

// Register mints a fresh visitor identity. The client stores the returned
// ID and sends it with every visitor request.
func (s *Usecase) Register(ctx context.Context) (*RegisterOutput, error) {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	id := s.uid.Generate()

	v, err := s.repoDB.CreateVisitor(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create visitor", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &RegisterOutput{VisitorID: v.ID, CreatedAt: v.CreatedAt}, nil
}
