package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"swipeshop/internal/model"
	"swipeshop/internal/repository"
	"swipeshop/internal/swipe"
)

// DecisionService records committed swipe decisions: every decision appends
// an interaction record, then performs the matching cart or saved side effect.
type DecisionService interface {
	Record(ctx context.Context, userID, productID uuid.UUID, direction swipe.Direction) error
}

type decisionService struct {
	interactionRepo repository.InteractionRepository
	cartRepo        repository.CartRepository
	savedRepo       repository.SavedRepository
}

// NewDecisionService creates a new decision service.
func NewDecisionService(
	interactionRepo repository.InteractionRepository,
	cartRepo repository.CartRepository,
	savedRepo repository.SavedRepository,
) DecisionService {
	return &decisionService{
		interactionRepo: interactionRepo,
		cartRepo:        cartRepo,
		savedRepo:       savedRepo,
	}
}

// Record appends the interaction first, best-effort: a logging failure never
// blocks the side effect and is not surfaced. The side effect itself is
// idempotent per (user, product) pair.
func (s *decisionService) Record(ctx context.Context, userID, productID uuid.UUID, direction swipe.Direction) error {
	action := model.SwipeActionLeft
	if direction == swipe.DirectionRight {
		action = model.SwipeActionRight
	}

	record := &model.SwipeInteraction{
		UserID:    userID,
		ProductID: productID,
		Action:    action,
	}
	if err := s.interactionRepo.Create(ctx, record); err != nil {
		log.Printf("record interaction for product %s: %v", productID, err)
	}

	if direction == swipe.DirectionRight {
		return s.addToCart(ctx, userID, productID)
	}
	return s.saveForLater(ctx, userID, productID)
}

// addToCart inserts a quantity-1 cart row unless one already exists. An
// existing row is left untouched, quantity included.
func (s *decisionService) addToCart(ctx context.Context, userID, productID uuid.UUID) error {
	existing, err := s.cartRepo.FindByUserAndProduct(ctx, userID, productID)
	if err != nil && err != gorm.ErrRecordNotFound {
		return err
	}
	if existing != nil {
		return nil
	}

	item := &model.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  1,
	}
	if err := s.cartRepo.Create(ctx, item); err != nil {
		// A duplicate insert lost a race with another right swipe for the
		// same pair; the surviving row already satisfies the contract.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}
	return nil
}

// saveForLater replaces any saved row for the pair: delete then insert, so a
// repeated left swipe always leaves exactly one row.
func (s *decisionService) saveForLater(ctx context.Context, userID, productID uuid.UUID) error {
	if err := s.savedRepo.DeleteByUserAndProduct(ctx, userID, productID); err != nil {
		return err
	}
	item := &model.SavedItem{
		UserID:    userID,
		ProductID: productID,
	}
	return s.savedRepo.Create(ctx, item)
}
