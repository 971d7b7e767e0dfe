package service

import (
	"errors"
	"testing"

	"go-poultrigo/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeKandangRepo struct {
	kandangs map[uuid.UUID]*model.Kandang
	history  []model.KandangHistory

	// historyErr makes AppendHistory fail, forcing the surrounding
	// transaction to roll back
	historyErr error
}

func newFakeKandangRepo(kandangs ...*model.Kandang) *fakeKandangRepo {
	repo := &fakeKandangRepo{kandangs: make(map[uuid.UUID]*model.Kandang)}
	for _, k := range kandangs {
		repo.kandangs[k.ID] = k
	}
	return repo
}

func (f *fakeKandangRepo) FindAll() ([]model.Kandang, error) {
	var out []model.Kandang
	for _, k := range f.kandangs {
		out = append(out, *k)
	}
	return out, nil
}

func (f *fakeKandangRepo) FindByID(id uuid.UUID) (*model.Kandang, error) {
	if k, ok := f.kandangs[id]; ok {
		return k, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeKandangRepo) Create(_ *gorm.DB, kandang *model.Kandang) error {
	if kandang.ID == uuid.Nil {
		kandang.ID = uuid.New()
	}
	f.kandangs[kandang.ID] = kandang
	return nil
}

func (f *fakeKandangRepo) Update(_ *gorm.DB, kandang *model.Kandang) error {
	f.kandangs[kandang.ID] = kandang
	return nil
}

func (f *fakeKandangRepo) Delete(_ *gorm.DB, id uuid.UUID) error {
	delete(f.kandangs, id)
	return nil
}

func (f *fakeKandangRepo) AppendHistory(_ *gorm.DB, entry *model.KandangHistory) error {
	if f.historyErr != nil {
		return f.historyErr
	}
	f.history = append(f.history, *entry)
	return nil
}

func (f *fakeKandangRepo) DeleteHistoryFor(_ *gorm.DB, kandangID uuid.UUID) error {
	kept := f.history[:0]
	for _, entry := range f.history {
		if entry.KandangID != kandangID {
			kept = append(kept, entry)
		}
	}
	f.history = kept
	return nil
}

func (f *fakeKandangRepo) HistoryFor(kandangID uuid.UUID) ([]model.KandangHistory, error) {
	var out []model.KandangHistory
	for _, entry := range f.history {
		if entry.KandangID == kandangID {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (f *fakeKandangRepo) AllHistory() ([]model.KandangHistory, error) {
	return f.history, nil
}

func TestCreateKandangWritesOneHistoryRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newFakeKandangRepo()
	svc := NewKandangService(repo, db, newTestHub())

	mock.ExpectBegin()
	mock.ExpectCommit()

	kandang, err := svc.Create("Kandang A", 120, 7)
	require.NoError(t, err)

	// Exactly one history row, tagged Created, matching the unit's state
	require.Len(t, repo.history, 1)
	assert.Equal(t, model.HistoryCreated, repo.history[0].Action)
	assert.Equal(t, kandang.ID, repo.history[0].KandangID)
	assert.Equal(t, 120, repo.history[0].Population)
	assert.Equal(t, 7, repo.history[0].Age)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateKandangAppendsOneHistoryRow(t *testing.T) {
	db, mock := newMockDB(t)
	kandang := &model.Kandang{
		BaseModel:  model.BaseModel{ID: uuid.New()},
		Name:       "Kandang A",
		Population: 120,
		Age:        7,
	}
	repo := newFakeKandangRepo(kandang)
	repo.history = []model.KandangHistory{
		{KandangID: kandang.ID, Action: model.HistoryCreated, Population: 120, Age: 7},
	}
	svc := NewKandangService(repo, db, newTestHub())

	mock.ExpectBegin()
	mock.ExpectCommit()

	updated, err := svc.Update(kandang.ID, "Kandang A1", 110, 8)
	require.NoError(t, err)
	assert.Equal(t, "Kandang A1", updated.Name)

	// One new row with the post-mutation state; the prior row untouched
	require.Len(t, repo.history, 2)
	assert.Equal(t, model.HistoryCreated, repo.history[0].Action)
	assert.Equal(t, 120, repo.history[0].Population)
	assert.Equal(t, model.HistoryUpdated, repo.history[1].Action)
	assert.Equal(t, 110, repo.history[1].Population)
	assert.Equal(t, 8, repo.history[1].Age)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateKandangRejectsInvalidInput(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newFakeKandangRepo()
	svc := NewKandangService(repo, db, nil)

	// Fails validation before any transaction is opened
	_, err := svc.Create("", 10, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Empty(t, repo.history)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateKandangHistoryFailureRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newFakeKandangRepo()
	repo.historyErr = errors.New("history insert failed")
	svc := NewKandangService(repo, db, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.Create("Kandang A", 120, 7)
	assert.Error(t, err)
	assert.Empty(t, repo.history)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteKandangRemovesHistory(t *testing.T) {
	db, mock := newMockDB(t)
	kandang := &model.Kandang{BaseModel: model.BaseModel{ID: uuid.New()}, Name: "Kandang A"}
	other := &model.Kandang{BaseModel: model.BaseModel{ID: uuid.New()}, Name: "Kandang B"}
	repo := newFakeKandangRepo(kandang, other)
	repo.history = []model.KandangHistory{
		{KandangID: kandang.ID, Action: model.HistoryCreated},
		{KandangID: other.ID, Action: model.HistoryCreated},
	}
	svc := NewKandangService(repo, db, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()

	require.NoError(t, svc.Delete(kandang.ID))

	_, err := repo.FindByID(kandang.ID)
	assert.Error(t, err)
	require.Len(t, repo.history, 1)
	assert.Equal(t, other.ID, repo.history[0].KandangID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteKandangMissing(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewKandangService(newFakeKandangRepo(), db, nil)

	err := svc.Delete(uuid.New())
	assert.ErrorIs(t, err, ErrKandangNotFound)
}
