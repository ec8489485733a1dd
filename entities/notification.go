package entities

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ItemID     uuid.UUID `gorm:"type:uuid;not null" json:"item_id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	Type       string    `gorm:"not null" json:"type"` // about_to_spoil, spoiled
	NotifiedAt time.Time `gorm:"type:timestamp;not null" json:"notified_at"`
	Sent       bool      `gorm:"default:false" json:"sent"`

	Item *FridgeItem `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"-"`
	User *User       `gorm:"foreignKey:UserID" json:"-"`
}
