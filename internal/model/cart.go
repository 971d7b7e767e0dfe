package model

import "github.com/google/uuid"

// CartItem is one line in a user's cart. A user holds at most one line per
// product; adding the same product again merges quantities.
type CartItem struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Product   *Product  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
	Quantity  int       `gorm:"not null" json:"quantity"`
}

// CartLine is the cart joined with live product data for display.
type CartLine struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	Stock     int       `json:"stock"`
	ImageURL  string    `json:"image_url"`
	Quantity  int       `json:"quantity"`
}

// CartView is what the cart page renders.
type CartView struct {
	Items []CartLine `json:"items"`
	Total int64      `json:"total"`
}
