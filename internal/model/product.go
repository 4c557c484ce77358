package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a listing offered by a seller. Products are globally
// readable but mutable only by the owning seller.
type Product struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	SellerID    uuid.UUID       `json:"seller_id" gorm:"type:char(36);not null;index"`
	Name        string          `json:"name" gorm:"size:255;index"`
	Description string          `json:"description" gorm:"type:text"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null;default:0"`
	ImageURL    string          `json:"image_url" gorm:"size:512"`
	Category    string          `json:"category" gorm:"size:100;index"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `json:"-" gorm:"index"`

	// Relations
	Seller Profile `json:"-" gorm:"foreignKey:SellerID"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
