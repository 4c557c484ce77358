package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"swipeshop/internal/model"
)

// InteractionRepository defines swipe interaction persistence operations.
// The log is append-only: there are deliberately no update or delete methods.
type InteractionRepository interface {
	Create(ctx context.Context, record *model.SwipeInteraction) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.SwipeInteraction, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]model.SwipeInteraction, error)
}

type interactionRepository struct {
	db *gorm.DB
}

// NewInteractionRepository creates a new interaction repository.
func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

// Create appends a new interaction record.
func (r *interactionRepository) Create(ctx context.Context, record *model.SwipeInteraction) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// ListByUser lists every interaction recorded for a user.
func (r *interactionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.SwipeInteraction, error) {
	var records []model.SwipeInteraction
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListBySeller lists interactions whose joined product belongs to the seller,
// with product details loaded for revenue aggregation.
func (r *interactionRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]model.SwipeInteraction, error) {
	var records []model.SwipeInteraction
	if err := r.db.WithContext(ctx).
		Joins("JOIN products ON products.id = swipe_interactions.product_id").
		Where("products.seller_id = ?", sellerID).
		Preload("Product").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
