package model

import "github.com/google/uuid"

// Kandang is a farm housing unit tracked for population and age.
type Kandang struct {
	BaseModel
	Name       string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Population int    `gorm:"default:0" json:"population" validate:"gte=0"`
	Age        int    `gorm:"default:0" json:"age" validate:"gte=0"` // days
}

// HistoryAction tags a kandang history entry.
type HistoryAction string

const (
	HistoryCreated HistoryAction = "Created"
	HistoryUpdated HistoryAction = "Updated"
)

// KandangHistory is an append-only record of every kandang mutation,
// capturing the post-mutation state. Rows are never edited; they are only
// removed when the owning kandang is deleted.
type KandangHistory struct {
	BaseModel
	KandangID  uuid.UUID     `gorm:"type:uuid;not null;index" json:"kandang_id"`
	Kandang    *Kandang      `gorm:"foreignKey:KandangID;constraint:OnDelete:CASCADE" json:"kandang,omitempty"`
	Action     HistoryAction `gorm:"type:varchar(20);not null" json:"action"`
	Population int           `gorm:"not null" json:"population"`
	Age        int           `gorm:"not null" json:"age"`
}
