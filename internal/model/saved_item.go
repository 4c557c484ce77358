package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SavedItem is a product set aside by a left swipe. At most one row per
// (user, product) pair.
type SavedItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);not null;uniqueIndex:idx_saved_user_product"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:char(36);not null;uniqueIndex:idx_saved_user_product"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// BeforeCreate sets UUID before creating the record.
func (si *SavedItem) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	return nil
}
