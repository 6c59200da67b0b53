package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/studytrack/internal/curriculum/entity"
	"github.com/shandysiswandi/studytrack/internal/pkg/goerror"
)

type SaveInput struct {
	VisitorID string `validate:"omitempty,uuid"`
	Subject   string `validate:"required,min=1,max=100"`
	Topic     string `validate:"required,min=1,max=200"`
	Watched   bool
	Revised   bool
	Tested    bool
}

type SaveOutput struct {
	Subject string
	Topic   string
	Watched bool
	Revised bool
	Tested  bool
}

func (s *Usecase) Save(ctx context.Context, in SaveInput) (*SaveOutput, error) {
	ctx, span := s.startSpan(ctx, "Save")
	defer span.End()

	in.Subject = strings.TrimSpace(in.Subject)
	in.Topic = strings.TrimSpace(in.Topic)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	owner, err := s.resolveOwner(ctx, in.VisitorID)
	if err != nil {
		return nil, err
	}

	if err := s.repoDB.UpsertTopic(ctx, entity.Topic{
		ID:      s.uid.Generate(),
		Owner:   owner,
		Subject: in.Subject,
		Topic:   in.Topic,
		Watched: in.Watched,
		Revised: in.Revised,
		Tested:  in.Tested,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo upsert topic", "owner", owner, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &SaveOutput{
		Subject: in.Subject,
		Topic:   in.Topic,
		Watched: in.Watched,
		Revised: in.Revised,
		Tested:  in.Tested,
	}, nil
}
