package repository

import (
	"go-poultrigo/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type KandangRepository interface {
	FindAll() ([]model.Kandang, error)
	FindByID(id uuid.UUID) (*model.Kandang, error)

	// Mutations take the caller's transaction: every kandang write must land
	// together with its history row.
	Create(tx *gorm.DB, kandang *model.Kandang) error
	Update(tx *gorm.DB, kandang *model.Kandang) error
	Delete(tx *gorm.DB, id uuid.UUID) error
	AppendHistory(tx *gorm.DB, entry *model.KandangHistory) error
	DeleteHistoryFor(tx *gorm.DB, kandangID uuid.UUID) error

	HistoryFor(kandangID uuid.UUID) ([]model.KandangHistory, error)
	AllHistory() ([]model.KandangHistory, error)
}

type kandangRepo struct {
	db *gorm.DB
}

func NewKandangRepo(db *gorm.DB) KandangRepository {
	return &kandangRepo{db}
}

func (r *kandangRepo) FindAll() ([]model.Kandang, error) {
	var kandangs []model.Kandang
	err := r.db.Order("name ASC").Find(&kandangs).Error
	return kandangs, err
}

func (r *kandangRepo) FindByID(id uuid.UUID) (*model.Kandang, error) {
	var kandang model.Kandang
	if err := r.db.First(&kandang, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &kandang, nil
}

func (r *kandangRepo) Create(tx *gorm.DB, kandang *model.Kandang) error {
	return tx.Create(kandang).Error
}

func (r *kandangRepo) Update(tx *gorm.DB, kandang *model.Kandang) error {
	return tx.Save(kandang).Error
}

func (r *kandangRepo) Delete(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Kandang{}, "id = ?", id).Error
}

func (r *kandangRepo) AppendHistory(tx *gorm.DB, entry *model.KandangHistory) error {
	return tx.Create(entry).Error
}

func (r *kandangRepo) DeleteHistoryFor(tx *gorm.DB, kandangID uuid.UUID) error {
	return tx.Delete(&model.KandangHistory{}, "kandang_id = ?", kandangID).Error
}

func (r *kandangRepo) HistoryFor(kandangID uuid.UUID) ([]model.KandangHistory, error) {
	var entries []model.KandangHistory
	err := r.db.Where("kandang_id = ?", kandangID).Order("created_at DESC").Find(&entries).Error
	return entries, err
}

func (r *kandangRepo) AllHistory() ([]model.KandangHistory, error) {
	var entries []model.KandangHistory
	err := r.db.Preload("Kandang").Order("created_at DESC").Find(&entries).Error
	return entries, err
}
