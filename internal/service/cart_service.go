package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "swipeshop/internal/errors"
	"swipeshop/internal/model"
	"swipeshop/internal/repository"
)

// CheckoutSummary reports what a checkout did: how many purchase records
// were written and how many lines failed to log. The cart is empty after
// checkout in either case.
type CheckoutSummary struct {
	Purchased int             `json:"purchased"`
	Failed    int             `json:"failed"`
	Total     decimal.Decimal `json:"total"`
}

// CartService handles the shopper's cart and saved-for-later collections.
type CartService interface {
	ListCart(ctx context.Context, userID uuid.UUID) ([]model.CartItem, error)
	RemoveCartItem(ctx context.Context, userID, itemID uuid.UUID) error
	Checkout(ctx context.Context, userID uuid.UUID) (*CheckoutSummary, error)
	ListSaved(ctx context.Context, userID uuid.UUID) ([]model.SavedItem, error)
	RemoveSavedItem(ctx context.Context, userID, itemID uuid.UUID) error
	MoveToCart(ctx context.Context, userID, itemID uuid.UUID) error
}

type cartService struct {
	cartRepo        repository.CartRepository
	savedRepo       repository.SavedRepository
	interactionRepo repository.InteractionRepository
}

// NewCartService creates a new cart service.
func NewCartService(
	cartRepo repository.CartRepository,
	savedRepo repository.SavedRepository,
	interactionRepo repository.InteractionRepository,
) CartService {
	return &cartService{
		cartRepo:        cartRepo,
		savedRepo:       savedRepo,
		interactionRepo: interactionRepo,
	}
}

// placeholderProduct stands in for a product deleted after the row was
// created, so the view renders instead of omitting the line.
func placeholderProduct(productID uuid.UUID) model.Product {
	return model.Product{
		ID:    productID,
		Name:  "Unknown",
		Price: decimal.Zero,
	}
}

// ListCart lists the user's cart with joined products, substituting a
// placeholder for products that no longer exist.
func (s *cartService) ListCart(ctx context.Context, userID uuid.UUID) ([]model.CartItem, error) {
	items, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	for i := range items {
		if items[i].Product.ID == uuid.Nil {
			items[i].Product = placeholderProduct(items[i].ProductID)
		}
	}
	return items, nil
}

// RemoveCartItem deletes a cart row by id, scoped to the caller.
func (s *cartService) RemoveCartItem(ctx context.Context, userID, itemID uuid.UUID) error {
	return s.cartRepo.DeleteByID(ctx, itemID, userID)
}

// Checkout writes one purchased interaction per cart line, best effort, then
// unconditionally empties the cart. A failed purchase record is logged and
// counted but neither stops the loop nor keeps the cart.
func (s *cartService) Checkout(ctx context.Context, userID uuid.UUID) (*CheckoutSummary, error) {
	items, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	summary := &CheckoutSummary{Total: decimal.Zero}
	for _, item := range items {
		record := &model.SwipeInteraction{
			UserID:    userID,
			ProductID: item.ProductID,
			Action:    model.SwipeActionPurchased,
		}
		if err := s.interactionRepo.Create(ctx, record); err != nil {
			log.Printf("record purchase for product %s: %v", item.ProductID, err)
			summary.Failed++
			continue
		}
		summary.Purchased++
		qty := decimal.NewFromInt(int64(item.Quantity))
		summary.Total = summary.Total.Add(item.Product.Price.Mul(qty))
	}

	if err := s.cartRepo.DeleteAllByUser(ctx, userID); err != nil {
		return summary, fmt.Errorf("clear cart: %w", err)
	}
	return summary, nil
}

// ListSaved lists the user's saved items with joined products, substituting
// a placeholder for products that no longer exist.
func (s *cartService) ListSaved(ctx context.Context, userID uuid.UUID) ([]model.SavedItem, error) {
	items, err := s.savedRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load saved items: %w", err)
	}
	for i := range items {
		if items[i].Product.ID == uuid.Nil {
			items[i].Product = placeholderProduct(items[i].ProductID)
		}
	}
	return items, nil
}

// RemoveSavedItem deletes a saved row by id, scoped to the caller.
func (s *cartService) RemoveSavedItem(ctx context.Context, userID, itemID uuid.UUID) error {
	return s.savedRepo.DeleteByID(ctx, itemID, userID)
}

// MoveToCart promotes a saved item: upsert the cart row first, delete the
// saved row only after the cart write succeeded. A failed cart write leaves
// the saved item in place.
func (s *cartService) MoveToCart(ctx context.Context, userID, itemID uuid.UUID) error {
	saved, err := s.savedRepo.FindByID(ctx, itemID, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrItemNotFound
		}
		return fmt.Errorf("load saved item: %w", err)
	}

	existing, err := s.cartRepo.FindByUserAndProduct(ctx, userID, saved.ProductID)
	if err != nil && err != gorm.ErrRecordNotFound {
		return fmt.Errorf("check cart: %w", err)
	}
	if existing == nil {
		item := &model.CartItem{
			UserID:    userID,
			ProductID: saved.ProductID,
			Quantity:  1,
		}
		if err := s.cartRepo.Create(ctx, item); err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("add to cart: %w", err)
		}
	}

	return s.savedRepo.DeleteByID(ctx, itemID, userID)
}
