package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SwipeAction is the discrete outcome recorded for an interaction.
type SwipeAction string

const (
	SwipeActionLeft      SwipeAction = "left"
	SwipeActionRight     SwipeAction = "right"
	SwipeActionPurchased SwipeAction = "purchased"
)

// SwipeInteraction is an append-only log entry for a swipe decision or a
// checkout line item. Rows are never updated or deleted by the application.
type SwipeInteraction struct {
	ID        uuid.UUID   `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID   `json:"user_id" gorm:"type:char(36);not null;index"`
	ProductID uuid.UUID   `json:"product_id" gorm:"type:char(36);not null;index"`
	Action    SwipeAction `json:"action" gorm:"type:varchar(20);not null;index"`
	CreatedAt time.Time   `json:"created_at"`

	// Relations
	Product Product `json:"-" gorm:"foreignKey:ProductID"`
}

// BeforeCreate sets UUID before creating the record.
func (si *SwipeInteraction) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	return nil
}
