package model

import "github.com/google/uuid"

// OrderStatus is the finite set of order states. Any authorized actor may set
// any value; there is no enforced transition graph.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

// Valid reports whether the status is a member of the known set.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// Order is created once per checkout. Immutable except for Status.
type Order struct {
	BaseModel
	OrderNumber string      `gorm:"type:varchar(20);uniqueIndex;not null" json:"order_number"`
	UserID      uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
	User        *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Status      OrderStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	TotalAmount int64       `gorm:"not null" json:"total_amount"`
	BuyerName   string      `gorm:"type:varchar(255);not null" json:"buyer_name"`
	Address     string      `gorm:"type:text;not null" json:"address"`
	Whatsapp    string      `gorm:"type:varchar(20);not null" json:"whatsapp"`
	Items       []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// OrderItem snapshots product name and unit price at purchase time so later
// catalog edits do not alter historical orders.
type OrderItem struct {
	BaseModel
	OrderID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID   *uuid.UUID `gorm:"type:uuid" json:"product_id,omitempty"`
	ProductName string     `gorm:"type:varchar(255);not null" json:"product_name"`
	Quantity    int        `gorm:"not null" json:"quantity"`
	Price       int64      `gorm:"not null" json:"price"`
	Subtotal    int64      `gorm:"not null" json:"subtotal"`
}
