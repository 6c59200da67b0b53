package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shandysiswandi/studytrack/internal/pkg/goerror"
	"github.com/shandysiswandi/studytrack/internal/pkg/instrument"
	"github.com/shandysiswandi/studytrack/internal/pkg/uid"
	"github.com/shandysiswandi/studytrack/internal/pkg/validator"
	"github.com/shandysiswandi/studytrack/internal/visitor/entity"
	"github.com/shandysiswandi/studytrack/internal/visitor/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDB struct {
	mu       sync.Mutex
	visitors map[string]*entity.Visitor
	orphans  map[string]entity.PurgeResult
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		visitors: make(map[string]*entity.Visitor),
		orphans:  make(map[string]entity.PurgeResult),
	}
}

func (f *fakeDB) CreateVisitor(_ context.Context, id string) (*entity.Visitor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.visitors[id]; ok {
		return nil, goerror.ErrConflict
	}

	now := time.Now()
	v := &entity.Visitor{ID: id, CreatedAt: now, LastSeenAt: now}
	f.visitors[id] = v
	return v, nil
}

func (f *fakeDB) TouchVisitor(_ context.Context, id string) (*entity.Visitor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, ok := f.visitors[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	v.LastSeenAt = time.Now()
	return v, nil
}

func (f *fakeDB) PurgeVisitor(_ context.Context, id string) (*entity.PurgeResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	res := f.orphans[id]
	if _, ok := f.visitors[id]; ok {
		res.Visitors = 1
		delete(f.visitors, id)
	}
	return &res, nil
}

func newUsecase(t *testing.T) (*usecase.Usecase, *fakeDB) {
	t.Helper()

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	db := newFakeDB()
	uc := usecase.New(usecase.Dependency{
		RepoDB:     db,
		Validator:  v,
		UID:        uid.NewUUID(),
		Instrument: instrument.NewNoop(),
	})

	return uc, db
}

func TestRegisterMintsVisitor(t *testing.T) {
	uc, db := newUsecase(t)

	out, err := uc.Register(t.Context())
	require.NoError(t, err)
	assert.Len(t, out.VisitorID, 36)
	assert.Contains(t, db.visitors, out.VisitorID)

	again, err := uc.Register(t.Context())
	require.NoError(t, err)
	assert.NotEqual(t, out.VisitorID, again.VisitorID)
}

func TestDataTouchesLastSeen(t *testing.T) {
	uc, db := newUsecase(t)

	reg, err := uc.Register(t.Context())
	require.NoError(t, err)

	before := db.visitors[reg.VisitorID].LastSeenAt

	out, err := uc.Data(t.Context(), usecase.DataInput{VisitorID: reg.VisitorID})
	require.NoError(t, err)
	assert.Equal(t, reg.VisitorID, out.VisitorID)
	assert.False(t, out.LastSeenAt.Before(before))
}

func TestDataUnknownVisitor(t *testing.T) {
	uc, _ := newUsecase(t)

	_, err := uc.Data(t.Context(), usecase.DataInput{VisitorID: "01924f7e-0000-7000-8000-000000000000"})
	require.Error(t, err)

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeNotFound, gerr.Code())
}

func TestDataRejectsBadID(t *testing.T) {
	uc, _ := newUsecase(t)

	_, err := uc.Data(t.Context(), usecase.DataInput{VisitorID: "not-a-uuid"})
	require.Error(t, err)

	_, err = uc.Data(t.Context(), usecase.DataInput{})
	require.Error(t, err)
}

func TestPurgeReportsCounts(t *testing.T) {
	uc, db := newUsecase(t)

	reg, err := uc.Register(t.Context())
	require.NoError(t, err)
	db.orphans[reg.VisitorID] = entity.PurgeResult{StudyHours: 3, CurriculumData: 5}

	out, err := uc.Purge(t.Context(), usecase.PurgeInput{VisitorID: reg.VisitorID})
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.StudyHours)
	assert.Equal(t, int64(5), out.CurriculumData)
	assert.NotContains(t, db.visitors, reg.VisitorID)
}

func TestPurgeUnknownVisitor(t *testing.T) {
	uc, _ := newUsecase(t)

	_, err := uc.Purge(t.Context(), usecase.PurgeInput{VisitorID: "01924f7e-0000-7000-8000-000000000000"})
	require.Error(t, err)

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeNotFound, gerr.Code())
}
