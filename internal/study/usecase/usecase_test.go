package usecase_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shandysiswandi/studytrack/internal/pkg/goerror"
	"github.com/shandysiswandi/studytrack/internal/pkg/instrument"
	"github.com/shandysiswandi/studytrack/internal/pkg/jwt"
	"github.com/shandysiswandi/studytrack/internal/pkg/validator"
	"github.com/shandysiswandi/studytrack/internal/study/entity"
	"github.com/shandysiswandi/studytrack/internal/study/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDB struct {
	mu      sync.Mutex
	records map[string][]entity.StudyHour
}

func newFakeDB() *fakeDB {
	return &fakeDB{records: make(map[string][]entity.StudyHour)}
}

func ownerKey(o entity.Owner) string {
	if o.IsUser() {
		return "u"
	}
	return "v:" + o.VisitorID
}

func (f *fakeDB) UpsertDayHours(_ context.Context, in entity.StudyHour) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := ownerKey(in.Owner)
	for i, rec := range f.records[key] {
		if rec.Year == in.Year && rec.Month == in.Month && rec.Day == in.Day {
			f.records[key][i].Hours = in.Hours
			return nil
		}
	}
	f.records[key] = append(f.records[key], in)
	return nil
}

func (f *fakeDB) GetMonthHours(_ context.Context, owner entity.Owner, year, month int) ([]entity.StudyHour, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]entity.StudyHour, 0)
	for _, rec := range f.records[ownerKey(owner)] {
		if rec.Year == year && rec.Month == month {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeDB) GetAllHours(_ context.Context, owner entity.Owner) ([]entity.StudyHour, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]entity.StudyHour(nil), f.records[ownerKey(owner)]...), nil
}

func (f *fakeDB) DeleteAllHours(_ context.Context, owner entity.Owner) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := ownerKey(owner)
	n := int64(len(f.records[key]))
	delete(f.records, key)
	return n, nil
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

const visitorID = "01924f7e-1111-7222-8333-444455556666"

func TestSaveDayForVisitorAndUser(t *testing.T) {
	uc, db := newUsecase(t)

	out, err := uc.SaveDay(t.Context(), usecase.SaveDayInput{
		VisitorID: visitorID,
		Year:      2026, Month: 9, Day: 1, Hours: 4.5,
	})
	require.NoError(t, err)
	assert.Equal(t, 4.5, out.Hours)

	_, err = uc.SaveDay(authCtx(t, 42), usecase.SaveDayInput{
		Year: 2026, Month: 9, Day: 1, Hours: 6,
	})
	require.NoError(t, err)

	vRecs, err := db.GetAllHours(t.Context(), entity.Owner{VisitorID: visitorID})
	require.NoError(t, err)
	assert.Len(t, vRecs, 1)

	uRecs, err := db.GetAllHours(t.Context(), entity.Owner{UserID: 42})
	require.NoError(t, err)
	assert.Len(t, uRecs, 1)
}

func TestSaveDayUpserts(t *testing.T) {
	uc, db := newUsecase(t)
	ctx := authCtx(t, 1)

	_, err := uc.SaveDay(ctx, usecase.SaveDayInput{Year: 2026, Month: 2, Day: 10, Hours: 3})
	require.NoError(t, err)
	_, err = uc.SaveDay(ctx, usecase.SaveDayInput{Year: 2026, Month: 2, Day: 10, Hours: 8})
	require.NoError(t, err)

	recs, err := db.GetAllHours(ctx, entity.Owner{UserID: 1})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 8.0, recs[0].Hours)
}

func TestSaveDayRequiresOwner(t *testing.T) {
	uc, _ := newUsecase(t)

	_, err := uc.SaveDay(t.Context(), usecase.SaveDayInput{Year: 2026, Month: 9, Day: 1, Hours: 2})
	require.Error(t, err)

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeUnauthorized, gerr.Code())
}

func TestSaveDayRejectsBadInput(t *testing.T) {
	uc, _ := newUsecase(t)
	ctx := authCtx(t, 1)

	cases := []usecase.SaveDayInput{
		{Year: 2026, Month: 13, Day: 1, Hours: 2},
		{Year: 2026, Month: 0, Day: 1, Hours: 2},
		{Year: 2026, Month: 5, Day: 32, Hours: 2},
		{Year: 2026, Month: 5, Day: 1, Hours: -1},
		{Year: 2026, Month: 5, Day: 1, Hours: 25},
		{Year: 1990, Month: 5, Day: 1, Hours: 2},
	}
	for _, in := range cases {
		_, err := uc.SaveDay(ctx, in)
		assert.Error(t, err, "input %+v", in)
	}
}

func TestMonthStats(t *testing.T) {
	uc, _ := newUsecase(t)
	ctx := authCtx(t, 7)

	for day, hours := range map[int]float64{1: 7, 2: 3.5, 3: 10.5} {
		_, err := uc.SaveDay(ctx, usecase.SaveDayInput{Year: 2026, Month: 2, Day: day, Hours: hours})
		require.NoError(t, err)
	}

	out, err := uc.Month(ctx, usecase.MonthInput{Year: 2026, Month: 2})
	require.NoError(t, err)

	assert.Len(t, out.Records, 3)
	assert.Equal(t, 21.0, out.Stats.TotalHours)
	assert.Equal(t, 7.0, out.Stats.AverageHours)
	assert.Equal(t, 28, out.Stats.DaysInMonth)
	assert.Equal(t, 196.0, out.Stats.TargetHours)
	// 21 / (7*28) * 100 = 10.71
	assert.Equal(t, 10.71, out.Stats.ProgressPercent)
}

func TestMonthStatsEmpty(t *testing.T) {
	uc, _ := newUsecase(t)

	out, err := uc.Month(t.Context(), usecase.MonthInput{VisitorID: visitorID, Year: 2026, Month: 1})
	require.NoError(t, err)

	assert.Empty(t, out.Records)
	assert.Equal(t, 0.0, out.Stats.TotalHours)
	assert.Equal(t, 0.0, out.Stats.AverageHours)
	assert.Equal(t, 0.0, out.Stats.ProgressPercent)
	assert.Equal(t, 31, out.Stats.DaysInMonth)
}

func TestDeleteAllReturnsCount(t *testing.T) {
	uc, _ := newUsecase(t)
	ctx := authCtx(t, 9)

	for day := 1; day <= 4; day++ {
		_, err := uc.SaveDay(ctx, usecase.SaveDayInput{Year: 2026, Month: 3, Day: day, Hours: 1})
		require.NoError(t, err)
	}

	out, err := uc.DeleteAll(ctx, usecase.DeleteAllInput{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), out.Deleted)

	all, err := uc.All(ctx, usecase.AllInput{})
	require.NoError(t, err)
	assert.Empty(t, all.Records)
}

func TestVisitorIDMustBeUUID(t *testing.T) {
	uc, _ := newUsecase(t)

	_, err := uc.All(t.Context(), usecase.AllInput{VisitorID: "not-a-uuid"})
	require.Error(t, err)
}
