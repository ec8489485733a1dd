package entities

import (
	"time"

	"github.com/google/uuid"
)

type FridgeItem struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FridgeID         uuid.UUID  `gorm:"type:uuid;not null" json:"fridge_id"`
	AddedBy          uuid.UUID  `gorm:"type:uuid;not null" json:"added_by"`
	QRCode           string     `gorm:"not null" json:"qr_code"`
	AddedAt          time.Time  `gorm:"type:timestamp;not null" json:"added_at"`
	FactoryExpiresAt time.Time  `gorm:"type:date;not null" json:"factory_expires_at"`
	OpenedAt         *time.Time `gorm:"type:date" json:"opened_at,omitempty"`
	OpenLifeDays     int        `gorm:"not null" json:"open_life_days"`
	// SpoilDate is derived from (OpenedAt, OpenLifeDays, FactoryExpiresAt)
	// and is recomputed on every write that touches those fields.
	SpoilDate time.Time `gorm:"type:date;not null" json:"spoil_date"`
	ImageURL  string    `json:"image_url,omitempty"`

	Fridge      *Fridge `gorm:"foreignKey:FridgeID;constraint:OnDelete:CASCADE" json:"-"`
	AddedByUser *User   `gorm:"foreignKey:AddedBy" json:"-"`
	QR          *QRCode `gorm:"foreignKey:QRCode;references:Code" json:"-"`
	Timestamp
}
