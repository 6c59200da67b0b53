package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/studytrack/internal/curriculum/entity"
	"github.com/shandysiswandi/studytrack/internal/pkg/goerror"
)

type SubjectInput struct {
	VisitorID string `validate:"omitempty,uuid"`
	Subject   string `validate:"required,min=1,max=100"`
}

type SubjectOutput struct {
	Subject string
	Records []entity.Topic
}

func (s *Usecase) Subject(ctx context.Context, in SubjectInput) (*SubjectOutput, error) {
	ctx, span := s.startSpan(ctx, "Subject")
	defer span.End()

	in.Subject = strings.TrimSpace(in.Subject)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	owner, err := s.resolveOwner(ctx, in.VisitorID)
	if err != nil {
		return nil, err
	}

	records, err := s.repoDB.GetSubjectTopics(ctx, owner, in.Subject)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get subject topics", "owner", owner, "subject", in.Subject, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &SubjectOutput{Subject: in.Subject, Records: records}, nil
}
