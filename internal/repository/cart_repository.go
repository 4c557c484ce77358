package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"swipeshop/internal/model"
)

// CartRepository defines cart item persistence operations.
type CartRepository interface {
	Create(ctx context.Context, item *model.CartItem) error
	FindByUser(ctx context.Context, userID uuid.UUID) ([]model.CartItem, error)
	FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*model.CartItem, error)
	DeleteByID(ctx context.Context, id, userID uuid.UUID) error
	DeleteAllByUser(ctx context.Context, userID uuid.UUID) error
}

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new cart repository.
func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

// Create creates a new cart item. The unique (user, product) index rejects
// duplicates that race past the caller's existence check.
func (r *cartRepository) Create(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// FindByUser lists a user's cart rows with joined product details.
func (r *cartRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]model.CartItem, error) {
	var items []model.CartItem
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByUserAndProduct finds the single cart row for a (user, product) pair.
func (r *cartRepository) FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*model.CartItem, error) {
	var item model.CartItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteByID deletes a cart row by ID, scoped to the owning user.
func (r *cartRepository) DeleteByID(ctx context.Context, id, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.CartItem{}).Error
}

// DeleteAllByUser removes every cart row owned by the user.
func (r *cartRepository) DeleteAllByUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartItem{}).Error
}
