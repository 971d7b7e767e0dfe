package repository

import (
	"time"

	"go-poultrigo/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository interface {
	// Create runs inside the caller's transaction; order items are inserted
	// together with the order row.
	Create(tx *gorm.DB, order *model.Order) error

	FindByUser(userID uuid.UUID) ([]model.Order, error)
	FindAll() ([]model.Order, error)
	FindByID(id uuid.UUID) (*model.Order, error)
	UpdateStatus(id uuid.UUID, status model.OrderStatus) error

	GetDashboardStats() (*DashboardStats, error)
	GetOrderVolume(startDate, endDate time.Time) ([]OrderVolumeData, error)
}

// OrderVolumeData untuk chart data
type OrderVolumeData struct {
	Date    string `json:"date"`
	Orders  int    `json:"orders"`
	Revenue int64  `json:"revenue"`
}

// DashboardStats untuk overview stats
type DashboardStats struct {
	TotalProducts int64 `json:"total_products"`
	LowStockCount int64 `json:"low_stock_count"`
	TotalUsers    int64 `json:"total_users"`
	PendingOrders int64 `json:"pending_orders"`
	TotalRevenue  int64 `json:"total_revenue"`
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db}
}

func (r *orderRepo) Create(tx *gorm.DB, order *model.Order) error {
	return tx.Create(order).Error
}

func (r *orderRepo) FindByUser(userID uuid.UUID) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepo) FindAll() ([]model.Order, error) {
	var orders []model.Order
	err := r.db.Preload("Items").Preload("User").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepo) FindByID(id uuid.UUID) (*model.Order, error) {
	var order model.Order
	err := r.db.Preload("Items").Preload("User").First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) UpdateStatus(id uuid.UUID, status model.OrderStatus) error {
	return r.db.Model(&model.Order{}).Where("id = ?", id).Update("status", status).Error
}

func (r *orderRepo) GetDashboardStats() (*DashboardStats, error) {
	var stats DashboardStats

	r.db.Model(&model.Product{}).Count(&stats.TotalProducts)
	r.db.Model(&model.Product{}).Where("stock < ?", 10).Count(&stats.LowStockCount)
	r.db.Model(&model.User{}).Count(&stats.TotalUsers)
	r.db.Model(&model.Order{}).Where("status = ?", model.OrderPending).Count(&stats.PendingOrders)

	// Revenue counts orders that actually went out the door
	r.db.Model(&model.Order{}).
		Where("status IN ?", []model.OrderStatus{model.OrderShipped, model.OrderCompleted}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.TotalRevenue)

	return &stats, nil
}

func (r *orderRepo) GetOrderVolume(startDate, endDate time.Time) ([]OrderVolumeData, error) {
	var results []OrderVolumeData

	rows, err := r.db.Model(&model.Order{}).
		Select(`
			DATE(created_at) as date,
			COUNT(*) as orders,
			COALESCE(SUM(total_amount), 0) as revenue
		`).
		Where("created_at BETWEEN ? AND ?", startDate, endDate).
		Group("DATE(created_at)").
		Order("date ASC").
		Rows()

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data OrderVolumeData
		if err := rows.Scan(&data.Date, &data.Orders, &data.Revenue); err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, nil
}
