package repository

import (
	"errors"

	"go-poultrigo/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrInsufficientStock is returned when a conditional stock decrement
// matches no row, meaning stock would have gone negative.
var ErrInsufficientStock = errors.New("insufficient stock")

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindAvailable() ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	Update(product *model.Product) error
	Delete(id uuid.UUID) error

	// DecrementStock runs inside the caller's transaction and only succeeds
	// when enough stock remains (stock = stock - qty WHERE stock >= qty).
	DecrementStock(tx *gorm.DB, id uuid.UUID, qty int) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Order("created_at DESC").Find(&products).Error
	return products, err
}

// FindAvailable returns products shown in the shop (out_of_stock hidden).
func (r *productRepo) FindAvailable() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("status != ?", model.ProductOutOfStock).Order("created_at DESC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Product{}, "id = ?", id).Error
}

func (r *productRepo) DecrementStock(tx *gorm.DB, id uuid.UUID, qty int) error {
	res := tx.Model(&model.Product{}).
		Where("id = ? AND stock >= ?", id, qty).
		Update("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}
