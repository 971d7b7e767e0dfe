package model

// News is a CMS article. Content is markdown rendered client-side.
type News struct {
	BaseModel
	Title         string   `gorm:"type:varchar(255);not null" json:"title" validate:"required"`
	Excerpt       string   `gorm:"type:text" json:"excerpt"`
	Content       string   `gorm:"type:text" json:"content" validate:"required"`
	Category      string   `gorm:"type:varchar(100)" json:"category"`
	Tags          []string `gorm:"serializer:json" json:"tags"`
	Published     bool     `gorm:"default:false" json:"published"`
	FeaturedImage string   `gorm:"type:varchar(255)" json:"featured_image"`
	Author        string   `gorm:"type:varchar(255)" json:"author"`
	AuthorID      string   `gorm:"type:varchar(255)" json:"author_id"`
	Views         int64    `gorm:"default:0" json:"views"`
}
