package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/studytrack/internal/pkg/goerror"
)

type PurgeInput struct {
	VisitorID string `validate:"required,uuid"`
}

type PurgeOutput struct {
	StudyHours     int64
	CurriculumData int64
}

// Purge erases the visitor and everything recorded under it.
func (s *Usecase) Purge(ctx context.Context, in PurgeInput) (*PurgeOutput, error) {
	ctx, span := s.startSpan(ctx, "Purge")
	defer span.End()

	in.VisitorID = strings.TrimSpace(in.VisitorID)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	res, err := s.repoDB.PurgeVisitor(ctx, in.VisitorID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo purge visitor", "visitor_id", in.VisitorID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if res.Visitors == 0 {
		return nil, goerror.NewBusiness("Visitor not found", goerror.CodeNotFound)
	}

	slog.InfoContext(ctx, "visitor data purged",
		"visitor_id", in.VisitorID,
		"study_hours", res.StudyHours,
		"curriculum_data", res.CurriculumData,
	)

	return &PurgeOutput{
		StudyHours:     res.StudyHours,
		CurriculumData: res.CurriculumData,
	}, nil
}
