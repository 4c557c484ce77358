package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "swipeshop/internal/errors"
	"swipeshop/internal/model"
)

func TestCartService_ListCartSubstitutesPlaceholder(t *testing.T) {
	userID := uuid.New()
	liveProduct := model.Product{ID: uuid.New(), Name: "Plain Tee", Price: decimal.RequireFromString("19.99")}
	deletedProductID := uuid.New()

	mockCart := new(MockCartRepository)
	mockCart.On("FindByUser", mock.Anything, userID).Return([]model.CartItem{
		{ID: uuid.New(), UserID: userID, ProductID: liveProduct.ID, Quantity: 1, Product: liveProduct},
		{ID: uuid.New(), UserID: userID, ProductID: deletedProductID, Quantity: 2},
	}, nil)

	service := NewCartService(mockCart, new(MockSavedRepository), new(MockInteractionRepository))
	items, err := service.ListCart(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "Plain Tee", items[0].Product.Name)
	assert.Equal(t, "Unknown", items[1].Product.Name)
	assert.True(t, items[1].Product.Price.IsZero())
}

func TestCartService_Checkout(t *testing.T) {
	userID := uuid.New()
	productA := model.Product{ID: uuid.New(), Price: decimal.RequireFromString("10.00")}
	productB := model.Product{ID: uuid.New(), Price: decimal.RequireFromString("5.00")}
	productC := model.Product{ID: uuid.New(), Price: decimal.RequireFromString("2.50")}

	cartOf := func() []model.CartItem {
		return []model.CartItem{
			{ID: uuid.New(), UserID: userID, ProductID: productA.ID, Quantity: 1, Product: productA},
			{ID: uuid.New(), UserID: userID, ProductID: productB.ID, Quantity: 2, Product: productB},
			{ID: uuid.New(), UserID: userID, ProductID: productC.ID, Quantity: 1, Product: productC},
		}
	}

	tests := []struct {
		name              string
		failFor           map[uuid.UUID]bool
		expectedPurchased int
		expectedFailed    int
	}{
		{
			name:              "all purchase records succeed",
			failFor:           map[uuid.UUID]bool{},
			expectedPurchased: 3,
			expectedFailed:    0,
		},
		{
			name:              "one purchase record fails",
			failFor:           map[uuid.UUID]bool{productB.ID: true},
			expectedPurchased: 2,
			expectedFailed:    1,
		},
		{
			name:              "every purchase record fails",
			failFor:           map[uuid.UUID]bool{productA.ID: true, productB.ID: true, productC.ID: true},
			expectedPurchased: 0,
			expectedFailed:    3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCart := new(MockCartRepository)
			mockCart.On("FindByUser", mock.Anything, userID).Return(cartOf(), nil)
			// The cart is cleared no matter how many purchase records stuck.
			mockCart.On("DeleteAllByUser", mock.Anything, userID).Return(nil).Once()

			mockInt := new(MockInteractionRepository)
			for _, item := range cartOf() {
				var ret error
				if tt.failFor[item.ProductID] {
					ret = errors.New("insert failed")
				}
				productID := item.ProductID
				mockInt.On("Create", mock.Anything, mock.MatchedBy(func(rec *model.SwipeInteraction) bool {
					return rec.ProductID == productID && rec.Action == model.SwipeActionPurchased
				})).Return(ret).Once()
			}

			service := NewCartService(mockCart, new(MockSavedRepository), mockInt)
			summary, err := service.Checkout(context.Background(), userID)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedPurchased, summary.Purchased)
			assert.Equal(t, tt.expectedFailed, summary.Failed)

			mockCart.AssertExpectations(t)
			mockInt.AssertExpectations(t)
		})
	}
}

func TestCartService_CheckoutEmptyCart(t *testing.T) {
	userID := uuid.New()

	mockCart := new(MockCartRepository)
	mockCart.On("FindByUser", mock.Anything, userID).Return([]model.CartItem{}, nil)
	mockCart.On("DeleteAllByUser", mock.Anything, userID).Return(nil).Once()

	service := NewCartService(mockCart, new(MockSavedRepository), new(MockInteractionRepository))
	summary, err := service.Checkout(context.Background(), userID)

	assert.NoError(t, err)
	assert.Equal(t, 0, summary.Purchased)
	assert.True(t, summary.Total.IsZero())
}

func TestCartService_CheckoutTotal(t *testing.T) {
	userID := uuid.New()
	product := model.Product{ID: uuid.New(), Price: decimal.RequireFromString("5.00")}

	mockCart := new(MockCartRepository)
	mockCart.On("FindByUser", mock.Anything, userID).Return([]model.CartItem{
		{ID: uuid.New(), UserID: userID, ProductID: product.ID, Quantity: 3, Product: product},
	}, nil)
	mockCart.On("DeleteAllByUser", mock.Anything, userID).Return(nil).Once()

	mockInt := new(MockInteractionRepository)
	mockInt.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	service := NewCartService(mockCart, new(MockSavedRepository), mockInt)
	summary, err := service.Checkout(context.Background(), userID)

	assert.NoError(t, err)
	assert.True(t, summary.Total.Equal(decimal.RequireFromString("15.00")))
}

func TestCartService_MoveToCart(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()
	savedID := uuid.New()
	savedRow := &model.SavedItem{ID: savedID, UserID: userID, ProductID: productID}

	t.Run("moves the row into the cart", func(t *testing.T) {
		mockSaved := new(MockSavedRepository)
		mockSaved.On("FindByID", mock.Anything, savedID, userID).Return(savedRow, nil)
		mockSaved.On("DeleteByID", mock.Anything, savedID, userID).Return(nil).Once()

		mockCart := new(MockCartRepository)
		mockCart.On("FindByUserAndProduct", mock.Anything, userID, productID).Return(nil, gorm.ErrRecordNotFound)
		mockCart.On("Create", mock.Anything, mock.MatchedBy(func(item *model.CartItem) bool {
			return item.ProductID == productID && item.Quantity == 1
		})).Return(nil).Once()

		service := NewCartService(mockCart, mockSaved, new(MockInteractionRepository))
		err := service.MoveToCart(context.Background(), userID, savedID)

		assert.NoError(t, err)
		mockSaved.AssertExpectations(t)
		mockCart.AssertExpectations(t)
	})

	t.Run("already in cart still deletes the saved row", func(t *testing.T) {
		mockSaved := new(MockSavedRepository)
		mockSaved.On("FindByID", mock.Anything, savedID, userID).Return(savedRow, nil)
		mockSaved.On("DeleteByID", mock.Anything, savedID, userID).Return(nil).Once()

		mockCart := new(MockCartRepository)
		mockCart.On("FindByUserAndProduct", mock.Anything, userID, productID).Return(&model.CartItem{
			UserID:    userID,
			ProductID: productID,
			Quantity:  1,
		}, nil)

		service := NewCartService(mockCart, mockSaved, new(MockInteractionRepository))
		err := service.MoveToCart(context.Background(), userID, savedID)

		assert.NoError(t, err)
		mockSaved.AssertExpectations(t)
	})

	t.Run("failed cart write retains the saved row", func(t *testing.T) {
		mockSaved := new(MockSavedRepository)
		mockSaved.On("FindByID", mock.Anything, savedID, userID).Return(savedRow, nil)

		mockCart := new(MockCartRepository)
		mockCart.On("FindByUserAndProduct", mock.Anything, userID, productID).Return(nil, gorm.ErrRecordNotFound)
		mockCart.On("Create", mock.Anything, mock.Anything).Return(errors.New("insert failed")).Once()

		service := NewCartService(mockCart, mockSaved, new(MockInteractionRepository))
		err := service.MoveToCart(context.Background(), userID, savedID)

		assert.Error(t, err)
		mockSaved.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing saved row", func(t *testing.T) {
		mockSaved := new(MockSavedRepository)
		mockSaved.On("FindByID", mock.Anything, savedID, userID).Return(nil, gorm.ErrRecordNotFound)

		service := NewCartService(new(MockCartRepository), mockSaved, new(MockInteractionRepository))
		err := service.MoveToCart(context.Background(), userID, savedID)

		assert.ErrorIs(t, err, apperrors.ErrItemNotFound)
	})
}

func TestCartService_ListSavedSubstitutesPlaceholder(t *testing.T) {
	userID := uuid.New()
	deletedProductID := uuid.New()

	mockSaved := new(MockSavedRepository)
	mockSaved.On("FindByUser", mock.Anything, userID).Return([]model.SavedItem{
		{ID: uuid.New(), UserID: userID, ProductID: deletedProductID},
	}, nil)

	service := NewCartService(new(MockCartRepository), mockSaved, new(MockInteractionRepository))
	items, err := service.ListSaved(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "Unknown", items[0].Product.Name)
	assert.True(t, items[0].Product.Price.IsZero())
}
