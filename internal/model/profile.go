package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role determines what a profile may do: shoppers swipe, sellers list.
type Role string

const (
	RoleUser   Role = "user"
	RoleSeller Role = "seller"
)

// Profile represents an authenticated identity, shopper or seller.
// One profile per identity; the row is upserted on first sign-in and
// never deleted by the application.
type Profile struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Name         string    `json:"name" gorm:"size:255;not null"`
	Role         Role      `json:"role" gorm:"type:varchar(20);not null;default:'user';index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Products []Product `json:"products,omitempty" gorm:"foreignKey:SellerID"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
