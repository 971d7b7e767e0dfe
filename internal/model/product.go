package model

// Product status values. Shop listings hide out_of_stock products.
const (
	ProductActive     = "active"
	ProductInactive   = "inactive"
	ProductOutOfStock = "out_of_stock"
)

type Product struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Price       int64  `gorm:"not null" json:"price" validate:"gte=0"` // Rupiah, whole units
	Stock       int    `gorm:"default:0" json:"stock" validate:"gte=0"`
	ImageURL    string `gorm:"type:varchar(255)" json:"image_url"`
	Description string `gorm:"type:text" json:"description"`
	Status      string `gorm:"type:varchar(50);default:'active'" json:"status"`
}
