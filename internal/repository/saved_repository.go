package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"swipeshop/internal/model"
)

// SavedRepository defines saved item persistence operations.
type SavedRepository interface {
	Create(ctx context.Context, item *model.SavedItem) error
	FindByUser(ctx context.Context, userID uuid.UUID) ([]model.SavedItem, error)
	FindByID(ctx context.Context, id, userID uuid.UUID) (*model.SavedItem, error)
	DeleteByID(ctx context.Context, id, userID uuid.UUID) error
	DeleteByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) error
}

type savedRepository struct {
	db *gorm.DB
}

// NewSavedRepository creates a new saved item repository.
func NewSavedRepository(db *gorm.DB) SavedRepository {
	return &savedRepository{db: db}
}

// Create creates a new saved item.
func (r *savedRepository) Create(ctx context.Context, item *model.SavedItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// FindByUser lists a user's saved rows with joined product details.
func (r *savedRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]model.SavedItem, error) {
	var items []model.SavedItem
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID finds a saved row by ID, scoped to the owning user.
func (r *savedRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*model.SavedItem, error) {
	var item model.SavedItem
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteByID deletes a saved row by ID, scoped to the owning user.
func (r *savedRepository) DeleteByID(ctx context.Context, id, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.SavedItem{}).Error
}

// DeleteByUserAndProduct removes any saved row for the (user, product) pair.
// Used by the delete-then-insert replace that keeps left swipes idempotent
// without an atomic upsert.
func (r *savedRepository) DeleteByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.SavedItem{}).Error
}
