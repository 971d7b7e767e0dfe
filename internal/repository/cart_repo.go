package repository

import (
	"go-poultrigo/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CartRepository interface {
	FindByUser(userID uuid.UUID) ([]model.CartItem, error)
	FindByUserAndProduct(userID, productID uuid.UUID) (*model.CartItem, error)
	FindByIDAndUser(id, userID uuid.UUID) (*model.CartItem, error)
	Create(item *model.CartItem) error
	UpdateQuantity(id uuid.UUID, quantity int) error
	Delete(id, userID uuid.UUID) error

	// DeleteAllForUser runs inside the caller's transaction so a checkout
	// empties the cart atomically with the order insert.
	DeleteAllForUser(tx *gorm.DB, userID uuid.UUID) error
}

type cartRepo struct {
	db *gorm.DB
}

func NewCartRepo(db *gorm.DB) CartRepository {
	return &cartRepo{db}
}

func (r *cartRepo) FindByUser(userID uuid.UUID) ([]model.CartItem, error) {
	var items []model.CartItem
	err := r.db.Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *cartRepo) FindByUserAndProduct(userID, productID uuid.UUID) (*model.CartItem, error) {
	var item model.CartItem
	err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepo) FindByIDAndUser(id, userID uuid.UUID) (*model.CartItem, error) {
	var item model.CartItem
	err := r.db.Preload("Product").Where("id = ? AND user_id = ?", id, userID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepo) Create(item *model.CartItem) error {
	return r.db.Create(item).Error
}

func (r *cartRepo) UpdateQuantity(id uuid.UUID, quantity int) error {
	return r.db.Model(&model.CartItem{}).Where("id = ?", id).Update("quantity", quantity).Error
}

func (r *cartRepo) Delete(id, userID uuid.UUID) error {
	return r.db.Delete(&model.CartItem{}, "id = ? AND user_id = ?", id, userID).Error
}

func (r *cartRepo) DeleteAllForUser(tx *gorm.DB, userID uuid.UUID) error {
	return tx.Delete(&model.CartItem{}, "user_id = ?", userID).Error
}
