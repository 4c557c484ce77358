package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"swipeshop/internal/catalog"
	apperrors "swipeshop/internal/errors"
	"swipeshop/internal/model"
	"swipeshop/internal/repository"
	"swipeshop/internal/swipe"
)

// decidedSetTTL bounds how long a user's decided cards survive between
// visits. Losing the set re-offers cards; it never fails the feed.
const decidedSetTTL = 24 * time.Hour

// Cache is the slice of the Redis client the feed needs for the per-user
// decided set. *cache.Client satisfies it; failures read as misses.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// ReleaseResult describes the outcome of a gesture release: the derived
// card geometry plus the decision, when one was committed.
type ReleaseResult struct {
	Committed bool            `json:"committed"`
	Direction swipe.Direction `json:"direction,omitempty"`
	Rotation  float64         `json:"rotation"`
	Opacity   float64         `json:"opacity"`
}

// FeedService serves the shopper deck and resolves gesture releases.
type FeedService interface {
	Feed(ctx context.Context, userID uuid.UUID) ([]model.Product, error)
	Release(ctx context.Context, userID, productID uuid.UUID, displacement float64) (*ReleaseResult, error)
}

type feedService struct {
	productRepo repository.ProductRepository
	decisions   DecisionService
	cache       Cache
}

// NewFeedService creates a new feed service.
func NewFeedService(productRepo repository.ProductRepository, decisions DecisionService, cache Cache) FeedService {
	return &feedService{
		productRepo: productRepo,
		decisions:   decisions,
		cache:       cache,
	}
}

func (s *feedService) deckKey(userID uuid.UUID) string {
	return fmt.Sprintf("deck:%s", userID.String())
}

// Feed returns the candidate sequence minus the user's decided set:
// all products newest first, deny-listed names dropped, names deduplicated,
// already-decided cards removed.
func (s *feedService) Feed(ctx context.Context, userID uuid.UUID) ([]model.Product, error) {
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	candidates := catalog.Filter(products)
	decided := s.decidedSet(ctx, userID)
	if len(decided) == 0 {
		return candidates, nil
	}

	visible := make([]model.Product, 0, len(candidates))
	for _, p := range candidates {
		if _, done := decided[p.ID]; done {
			continue
		}
		visible = append(visible, p)
	}
	return visible, nil
}

// Release resolves a gesture release at the given displacement. A committed
// decision marks the card decided and hands off to the decision recorder;
// a sub-threshold release reports the spring-back geometry only.
func (s *feedService) Release(ctx context.Context, userID, productID uuid.UUID, displacement float64) (*ReleaseResult, error) {
	decided := s.decidedSet(ctx, userID)
	if _, done := decided[productID]; done {
		return nil, apperrors.ErrAlreadyDecided
	}

	result := &ReleaseResult{
		Rotation: swipe.Rotation(displacement),
		Opacity:  swipe.Opacity(displacement),
	}

	direction, committed := swipe.Resolve(displacement)
	if !committed {
		return result, nil
	}

	result.Committed = true
	result.Direction = direction

	// The card is terminal from this point even if the side effect fails:
	// it is not re-offered in the session.
	decided[productID] = struct{}{}
	s.storeDecidedSet(ctx, userID, decided)

	if err := s.decisions.Record(ctx, userID, productID, direction); err != nil {
		return result, err
	}
	return result, nil
}

// decidedSet loads the user's decided product ids from Redis. Any cache
// failure reads as an empty set.
func (s *feedService) decidedSet(ctx context.Context, userID uuid.UUID) map[uuid.UUID]struct{} {
	decided := make(map[uuid.UUID]struct{})
	data, _ := s.cache.Get(ctx, s.deckKey(userID))
	if data == nil {
		return decided
	}

	var ids []uuid.UUID
	if err := json.Unmarshal(data, &ids); err != nil {
		return decided
	}
	for _, id := range ids {
		decided[id] = struct{}{}
	}
	return decided
}

// storeDecidedSet persists the decided set back to Redis, best effort.
func (s *feedService) storeDecidedSet(ctx context.Context, userID uuid.UUID, decided map[uuid.UUID]struct{}) {
	ids := make([]uuid.UUID, 0, len(decided))
	for id := range decided {
		ids = append(ids, id)
	}
	if payload, err := json.Marshal(ids); err == nil {
		_ = s.cache.Set(ctx, s.deckKey(userID), payload, decidedSetTTL)
	}
}
