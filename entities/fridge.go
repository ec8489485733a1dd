package entities

import (
	"github.com/google/uuid"
)

type Fridge struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	LocationDesc string    `gorm:"type:text" json:"location_desc,omitempty"`

	Items []*FridgeItem `gorm:"foreignKey:FridgeID" json:"-"`
	Timestamp
}

// FridgeUser grants a user a role over a shared fridge. Every mapping holder,
// regardless of role, receives spoilage notifications for the fridge's items.
type FridgeUser struct {
	FridgeID uuid.UUID `gorm:"type:uuid;primaryKey" json:"fridge_id"`
	UserID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Role     string    `gorm:"not null" json:"role"` // owner, editor, viewer

	Fridge *Fridge `gorm:"foreignKey:FridgeID;constraint:OnDelete:CASCADE" json:"-"`
	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
