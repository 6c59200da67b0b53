package usecase_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shandysiswandi/studytrack/internal/curriculum/entity"
	"github.com/shandysiswandi/studytrack/internal/curriculum/usecase"
	"github.com/shandysiswandi/studytrack/internal/pkg/goerror"
	"github.com/shandysiswandi/studytrack/internal/pkg/instrument"
	"github.com/shandysiswandi/studytrack/internal/pkg/jwt"
	"github.com/shandysiswandi/studytrack/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDB struct {
	mu      sync.Mutex
	records map[string][]entity.Topic
}

func newFakeDB() *fakeDB {
	return &fakeDB{records: make(map[string][]entity.Topic)}
}

func ownerKey(o entity.Owner) string {
	if o.IsUser() {
		return "u"
	}
	return "v:" + o.VisitorID
}

func (f *fakeDB) UpsertTopic(_ context.Context, in entity.Topic) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := ownerKey(in.Owner)
	for i, rec := range f.records[key] {
		if rec.Subject == in.Subject && rec.Topic == in.Topic {
			f.records[key][i].Watched = in.Watched
			f.records[key][i].Revised = in.Revised
			f.records[key][i].Tested = in.Tested
			return nil
		}
	}
	f.records[key] = append(f.records[key], in)
	return nil
}

func (f *fakeDB) GetAllTopics(_ context.Context, owner entity.Owner) ([]entity.Topic, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]entity.Topic(nil), f.records[ownerKey(owner)]...), nil
}

func (f *fakeDB) GetSubjectTopics(_ context.Context, owner entity.Owner, subject string) ([]entity.Topic, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]entity.Topic, 0)
	for _, rec := range f.records[ownerKey(owner)] {
		if rec.Subject == subject {
			out = append(out, rec)
		}
	}
	return out, nil
}

type seqID struct {
	mu   sync.Mutex
	next int64
}

func (s *seqID) Generate() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return s.next
}

func newUsecase(t *testing.T) (*usecase.Usecase, *fakeDB) {
	t.Helper()

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	db := newFakeDB()
	uc := usecase.New(usecase.Dependency{
		RepoDB:     db,
		Validator:  v,
		UID:        &seqID{},
		Instrument: instrument.NewNoop(),
	})

	return uc, db
}

func authCtx(t *testing.T, userID int64) context.Context {
	t.Helper()
	return jwt.SetAuth(t.Context(), jwt.Claims{UserID: userID, UserEmail: "user@example.com"})
}

const visitorID = "01924f7e-aaaa-7bbb-8ccc-dddd00001111"

func TestSaveForVisitorAndUser(t *testing.T) {
	uc, db := newUsecase(t)

	out, err := uc.Save(t.Context(), usecase.SaveInput{
		VisitorID: visitorID,
		Subject:   "Mathematics",
		Topic:     "Algebra",
		Watched:   true,
	})
	require.NoError(t, err)
	assert.True(t, out.Watched)
	assert.False(t, out.Revised)

	_, err = uc.Save(authCtx(t, 42), usecase.SaveInput{
		Subject: "Mathematics",
		Topic:   "Algebra",
		Tested:  true,
	})
	require.NoError(t, err)

	vRecs, err := db.GetAllTopics(t.Context(), entity.Owner{VisitorID: visitorID})
	require.NoError(t, err)
	assert.Len(t, vRecs, 1)

	uRecs, err := db.GetAllTopics(t.Context(), entity.Owner{UserID: 42})
	require.NoError(t, err)
	assert.Len(t, uRecs, 1)
}

func TestSaveUpsertsFlags(t *testing.T) {
	uc, db := newUsecase(t)
	ctx := authCtx(t, 1)

	_, err := uc.Save(ctx, usecase.SaveInput{Subject: "Physics", Topic: "Optics", Watched: true})
	require.NoError(t, err)
	_, err = uc.Save(ctx, usecase.SaveInput{Subject: "Physics", Topic: "Optics", Watched: true, Revised: true})
	require.NoError(t, err)

	recs, err := db.GetAllTopics(ctx, entity.Owner{UserID: 1})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.True(t, recs[0].Watched)
	assert.True(t, recs[0].Revised)
	assert.False(t, recs[0].Tested)
}

func TestSaveTrimsSubjectAndTopic(t *testing.T) {
	uc, _ := newUsecase(t)

	out, err := uc.Save(authCtx(t, 2), usecase.SaveInput{
		Subject: "  Chemistry ",
		Topic:   " Stoichiometry  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Chemistry", out.Subject)
	assert.Equal(t, "Stoichiometry", out.Topic)
}

func TestSaveRequiresOwner(t *testing.T) {
	uc, _ := newUsecase(t)

	_, err := uc.Save(t.Context(), usecase.SaveInput{Subject: "Math", Topic: "Algebra"})
	require.Error(t, err)

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeUnauthorized, gerr.Code())
}

func TestSaveRejectsBadInput(t *testing.T) {
	uc, _ := newUsecase(t)
	ctx := authCtx(t, 1)

	cases := []usecase.SaveInput{
		{Subject: "", Topic: "Algebra"},
		{Subject: "Math", Topic: ""},
		{VisitorID: "not-a-uuid", Subject: "Math", Topic: "Algebra"},
	}
	for _, in := range cases {
		_, err := uc.Save(ctx, in)
		assert.Error(t, err, "input %+v", in)
	}
}

func TestAllGroupsBySubject(t *testing.T) {
	uc, _ := newUsecase(t)
	ctx := authCtx(t, 7)

	seed := []usecase.SaveInput{
		{Subject: "Math", Topic: "Algebra", Watched: true, Revised: true, Tested: true},
		{Subject: "Math", Topic: "Geometry", Watched: true},
		{Subject: "Biology", Topic: "Cells", Watched: true, Revised: true},
	}
	for _, in := range seed {
		_, err := uc.Save(ctx, in)
		require.NoError(t, err)
	}

	out, err := uc.All(ctx, usecase.AllInput{})
	require.NoError(t, err)

	assert.Len(t, out.Records, 3)
	require.Len(t, out.Subjects, 2)

	// Sorted by subject name.
	bio := out.Subjects[0]
	assert.Equal(t, "Biology", bio.Subject)
	assert.Equal(t, 1, bio.Topics)
	assert.Equal(t, 1, bio.Watched)
	assert.Equal(t, 1, bio.Revised)
	assert.Equal(t, 0, bio.Tested)
	// 2 done flags / (1 topic * 3) = 66.67
	assert.Equal(t, 66.67, bio.CompletionPercent)

	math := out.Subjects[1]
	assert.Equal(t, "Math", math.Subject)
	assert.Equal(t, 2, math.Topics)
	assert.Equal(t, 2, math.Watched)
	assert.Equal(t, 1, math.Revised)
	assert.Equal(t, 1, math.Tested)
	// 4 done flags / (2 topics * 3) = 66.67
	assert.Equal(t, 66.67, math.CompletionPercent)

	assert.Equal(t, 2, out.Overall.Subjects)
	assert.Equal(t, 3, out.Overall.Topics)
	assert.Equal(t, 3, out.Overall.Watched)
	assert.Equal(t, 2, out.Overall.Revised)
	assert.Equal(t, 1, out.Overall.Tested)
	// 6 done flags / (3 topics * 3) = 66.67
	assert.Equal(t, 66.67, out.Overall.CompletionPercent)
}

func TestAllEmpty(t *testing.T) {
	uc, _ := newUsecase(t)

	out, err := uc.All(t.Context(), usecase.AllInput{VisitorID: visitorID})
	require.NoError(t, err)

	assert.Empty(t, out.Records)
	assert.Empty(t, out.Subjects)
	assert.Equal(t, 0, out.Overall.Topics)
	assert.Equal(t, 0.0, out.Overall.CompletionPercent)
}

func TestSubjectFiltersRecords(t *testing.T) {
	uc, _ := newUsecase(t)
	ctx := authCtx(t, 3)

	_, err := uc.Save(ctx, usecase.SaveInput{Subject: "History", Topic: "WW2", Watched: true})
	require.NoError(t, err)
	_, err = uc.Save(ctx, usecase.SaveInput{Subject: "Math", Topic: "Algebra"})
	require.NoError(t, err)

	out, err := uc.Subject(ctx, usecase.SubjectInput{Subject: "History"})
	require.NoError(t, err)
	assert.Equal(t, "History", out.Subject)
	require.Len(t, out.Records, 1)
	assert.Equal(t, "WW2", out.Records[0].Topic)
}

func TestSubjectRequiresName(t *testing.T) {
	uc, _ := newUsecase(t)

	_, err := uc.Subject(authCtx(t, 1), usecase.SubjectInput{Subject: "  "})
	require.Error(t, err)
}

func TestVisitorIDMustBeUUID(t *testing.T) {
	uc, _ := newUsecase(t)

	_, err := uc.All(t.Context(), usecase.AllInput{VisitorID: "nope"})
	require.Error(t, err)
}
