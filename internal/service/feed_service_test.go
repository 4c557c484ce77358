package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "swipeshop/internal/errors"
	"swipeshop/internal/model"
	"swipeshop/internal/swipe"
)

func feedFixture() []model.Product {
	return []model.Product{
		{ID: uuid.New(), Name: "Denim Jacket"},
		{ID: uuid.New(), Name: "Ripped Jeans"},
		{ID: uuid.New(), Name: "Sneakers"},
		{ID: uuid.New(), Name: "sneakers"},
	}
}

func TestFeedService_FeedFiltersCatalog(t *testing.T) {
	products := feedFixture()
	userID := uuid.New()

	mockProducts := new(MockProductRepository)
	mockProducts.On("ListAll", mock.Anything).Return(products, nil)

	service := NewFeedService(mockProducts, new(MockDecisionService), newFakeCache())
	feed, err := service.Feed(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, feed, 2)
	assert.Equal(t, "Denim Jacket", feed[0].Name)
	assert.Equal(t, "Sneakers", feed[1].Name)
}

func TestFeedService_FeedError(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockProducts.On("ListAll", mock.Anything).Return(nil, errors.New("db down"))

	service := NewFeedService(mockProducts, new(MockDecisionService), newFakeCache())
	feed, err := service.Feed(context.Background(), uuid.New())

	assert.Error(t, err)
	assert.Nil(t, feed)
}

func TestFeedService_ReleaseWithinThreshold(t *testing.T) {
	products := feedFixture()
	userID := uuid.New()
	productID := products[0].ID

	mockProducts := new(MockProductRepository)
	mockProducts.On("ListAll", mock.Anything).Return(products, nil)
	mockDecisions := new(MockDecisionService)

	service := NewFeedService(mockProducts, mockDecisions, newFakeCache())

	for _, d := range []float64{0, 60, 100, -100} {
		result, err := service.Release(context.Background(), userID, productID, d)
		assert.NoError(t, err)
		assert.False(t, result.Committed)
	}

	// No decision was recorded and the card is still in the feed.
	mockDecisions.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	feed, err := service.Feed(context.Background(), userID)
	assert.NoError(t, err)
	assert.Contains(t, productIDs(feed), productID)
}

func TestFeedService_ReleaseCommitsAndRemovesCard(t *testing.T) {
	tests := []struct {
		name         string
		displacement float64
		direction    swipe.Direction
	}{
		{name: "right", displacement: 140, direction: swipe.DirectionRight},
		{name: "left", displacement: -140, direction: swipe.DirectionLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products := feedFixture()
			userID := uuid.New()
			productID := products[0].ID

			mockProducts := new(MockProductRepository)
			mockProducts.On("ListAll", mock.Anything).Return(products, nil)
			mockDecisions := new(MockDecisionService)
			mockDecisions.On("Record", mock.Anything, userID, productID, tt.direction).Return(nil).Once()

			service := NewFeedService(mockProducts, mockDecisions, newFakeCache())
			result, err := service.Release(context.Background(), userID, productID, tt.displacement)

			assert.NoError(t, err)
			assert.True(t, result.Committed)
			assert.Equal(t, tt.direction, result.Direction)

			// The card left the visible sequence.
			feed, err := service.Feed(context.Background(), userID)
			assert.NoError(t, err)
			assert.NotContains(t, productIDs(feed), productID)

			// And a second gesture on it is rejected as already decided.
			_, err = service.Release(context.Background(), userID, productID, 150)
			assert.ErrorIs(t, err, apperrors.ErrAlreadyDecided)

			mockDecisions.AssertExpectations(t)
		})
	}
}

func TestFeedService_ReleaseRecorderFailureKeepsCardDecided(t *testing.T) {
	products := feedFixture()
	userID := uuid.New()
	productID := products[0].ID

	mockProducts := new(MockProductRepository)
	mockProducts.On("ListAll", mock.Anything).Return(products, nil)
	mockDecisions := new(MockDecisionService)
	mockDecisions.On("Record", mock.Anything, userID, productID, swipe.DirectionRight).
		Return(errors.New("cart insert failed")).Once()

	service := NewFeedService(mockProducts, mockDecisions, newFakeCache())
	result, err := service.Release(context.Background(), userID, productID, 150)

	assert.Error(t, err)
	assert.True(t, result.Committed)

	// The failed side effect does not re-offer the card.
	feed, ferr := service.Feed(context.Background(), userID)
	assert.NoError(t, ferr)
	assert.NotContains(t, productIDs(feed), productID)
}

func TestFeedService_ReleaseGeometry(t *testing.T) {
	products := feedFixture()

	mockProducts := new(MockProductRepository)
	mockProducts.On("ListAll", mock.Anything).Return(products, nil)
	mockDecisions := new(MockDecisionService)
	mockDecisions.On("Record", mock.Anything, mock.Anything, mock.Anything, swipe.DirectionLeft).Return(nil).Once()

	service := NewFeedService(mockProducts, mockDecisions, newFakeCache())
	result, err := service.Release(context.Background(), uuid.New(), products[0].ID, -150)

	assert.NoError(t, err)
	assert.True(t, result.Committed)
	assert.InDelta(t, -18.75, result.Rotation, 1e-9)
	assert.InDelta(t, 0.5, result.Opacity, 1e-9)
}

func productIDs(products []model.Product) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}
