package repository

import (
	"go-poultrigo/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NewsRepository interface {
	FindAll() ([]model.News, error)
	FindPublished() ([]model.News, error)
	FindByID(id uuid.UUID) (*model.News, error)
	Create(news *model.News) error
	Update(news *model.News) error
	Delete(id uuid.UUID) error
	IncrementViews(id uuid.UUID) error
}

type newsRepo struct {
	db *gorm.DB
}

func NewNewsRepo(db *gorm.DB) NewsRepository {
	return &newsRepo{db}
}

func (r *newsRepo) FindAll() ([]model.News, error) {
	var news []model.News
	err := r.db.Order("created_at DESC").Find(&news).Error
	return news, err
}

func (r *newsRepo) FindPublished() ([]model.News, error) {
	var news []model.News
	err := r.db.Where("published = ?", true).Order("created_at DESC").Find(&news).Error
	return news, err
}

func (r *newsRepo) FindByID(id uuid.UUID) (*model.News, error) {
	var news model.News
	if err := r.db.First(&news, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &news, nil
}

func (r *newsRepo) Create(news *model.News) error {
	return r.db.Create(news).Error
}

func (r *newsRepo) Update(news *model.News) error {
	return r.db.Save(news).Error
}

func (r *newsRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.News{}, "id = ?", id).Error
}

func (r *newsRepo) IncrementViews(id uuid.UUID) error {
	return r.db.Model(&model.News{}).Where("id = ?", id).
		Update("views", gorm.Expr("views + 1")).Error
}
