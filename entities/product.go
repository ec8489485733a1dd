package entities

import (
	"github.com/google/uuid"
)

type Product struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name             string    `gorm:"not null" json:"name"`
	Category         string    `json:"category,omitempty"`
	DefaultShelfLife int       `gorm:"not null" json:"default_shelf_life"` // days
	DefaultOpenLife  int       `json:"default_open_life"`                  // days

	Timestamp
}

type QRCode struct {
	Code      string    `gorm:"primaryKey" json:"code"`
	ProductID uuid.UUID `gorm:"type:uuid;not null" json:"product_id"`
	BatchInfo string    `json:"batch_info,omitempty"`
	InfoURL   string    `gorm:"type:text" json:"info_url,omitempty"`

	Product *Product `gorm:"foreignKey:ProductID" json:"-"`
}
