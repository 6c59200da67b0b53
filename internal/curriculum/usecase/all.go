package usecase

import (
	"context"
	"log/slog"
	"math"
	"sort"

	"github.com/samber/lo"
	"github.com/shandysiswandi/studytrack/internal/curriculum/entity"
	"github.com/shandysiswandi/studytrack/internal/pkg/goerror"
)

type AllInput struct {
	VisitorID string `validate:"omitempty,uuid"`
}

type AllOutput struct {
	Records  []entity.Topic
	Subjects []entity.SubjectStats
	Overall  entity.OverallStats
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

	records, err := s.repoDB.GetAllTopics(ctx, owner)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get all topics", "owner", owner, "error", err)
		return nil, goerror.NewServer(err)
	}

	subjects, overall := curriculumStats(records)

	return &AllOutput{
		Records:  records,
		Subjects: subjects,
		Overall:  overall,
	}, nil
}

func curriculumStats(records []entity.Topic) ([]entity.SubjectStats, entity.OverallStats) {
	grouped := lo.GroupBy(records, func(t entity.Topic) string { return t.Subject })

	subjects := make([]entity.SubjectStats, 0, len(grouped))
	for subject, topics := range grouped {
		st := entity.SubjectStats{Subject: subject, Topics: len(topics)}
		for _, t := range topics {
			if t.Watched {
				st.Watched++
			}
			if t.Revised {
				st.Revised++
			}
			if t.Tested {
				st.Tested++
			}
		}
		st.CompletionPercent = completion(st.Watched+st.Revised+st.Tested, st.Topics)
		subjects = append(subjects, st)
	}

	sort.Slice(subjects, func(i, j int) bool { return subjects[i].Subject < subjects[j].Subject })

	overall := entity.OverallStats{
		Subjects: len(subjects),
		Topics:   len(records),
		Watched:  lo.SumBy(subjects, func(s entity.SubjectStats) int { return s.Watched }),
		Revised:  lo.SumBy(subjects, func(s entity.SubjectStats) int { return s.Revised }),
		Tested:   lo.SumBy(subjects, func(s entity.SubjectStats) int { return s.Tested }),
	}
	overall.CompletionPercent = completion(overall.Watched+overall.Revised+overall.Tested, overall.Topics)

	return subjects, overall
}

// completion is the share of set flags out of topics times three flags.
func completion(done, topics int) float64 {
	if topics == 0 {
		return 0
	}
	return math.Round(float64(done)/float64(topics*3)*100*100) / 100
}
