package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"swipeshop/internal/catalog"
	apperrors "swipeshop/internal/errors"
	"swipeshop/internal/model"
	"swipeshop/internal/repository"
)

// Analytics aggregates a seller's interaction log.
type Analytics struct {
	TotalViews       int             `json:"total_views"`
	TotalSwipesRight int             `json:"total_swipes_right"`
	TotalSwipesLeft  int             `json:"total_swipes_left"`
	TotalPurchases   int             `json:"total_purchases"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	ConversionRate   string          `json:"conversion_rate"`
}

// NewProductInput carries the add-product fields. Only the price is
// validated beyond parsing; empty name and description are allowed.
type NewProductInput struct {
	Name        string
	Description string
	Price       string
	ImageURL    string
	Category    string
}

// SellerService handles seller product management and engagement analytics.
type SellerService interface {
	Products(ctx context.Context, sellerID uuid.UUID) ([]model.Product, error)
	AddProduct(ctx context.Context, sellerID uuid.UUID, input NewProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, sellerID, productID uuid.UUID) error
	Analytics(ctx context.Context, sellerID uuid.UUID) (*Analytics, error)
}

type sellerService struct {
	profileRepo     repository.ProfileRepository
	productRepo     repository.ProductRepository
	interactionRepo repository.InteractionRepository
}

// NewSellerService creates a new seller service.
func NewSellerService(
	profileRepo repository.ProfileRepository,
	productRepo repository.ProductRepository,
	interactionRepo repository.InteractionRepository,
) SellerService {
	return &sellerService{
		profileRepo:     profileRepo,
		productRepo:     productRepo,
		interactionRepo: interactionRepo,
	}
}

// requireSeller loads the profile and verifies the seller role.
func (s *sellerService) requireSeller(ctx context.Context, sellerID uuid.UUID) (*model.Profile, error) {
	profile, err := s.profileRepo.FindByID(ctx, sellerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if profile.Role != model.RoleSeller {
		return nil, apperrors.ErrNotSeller
	}
	return profile, nil
}

// Products lists the seller's own products with the same deny-list and
// dedup rules as the shopper feed.
func (s *sellerService) Products(ctx context.Context, sellerID uuid.UUID) ([]model.Product, error) {
	if _, err := s.requireSeller(ctx, sellerID); err != nil {
		return nil, err
	}

	products, err := s.productRepo.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	return catalog.Filter(products), nil
}

// AddProduct inserts a product for the seller. The price must parse as a
// non-negative decimal; no other field validation is applied.
func (s *sellerService) AddProduct(ctx context.Context, sellerID uuid.UUID, input NewProductInput) (*model.Product, error) {
	if _, err := s.requireSeller(ctx, sellerID); err != nil {
		return nil, err
	}

	price, err := decimal.NewFromString(input.Price)
	if err != nil || price.IsNegative() {
		return nil, apperrors.ErrInvalidPrice
	}

	product := &model.Product{
		SellerID:    sellerID,
		Name:        input.Name,
		Description: input.Description,
		Price:       price,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

// DeleteProduct removes a product only when the caller owns it.
func (s *sellerService) DeleteProduct(ctx context.Context, sellerID, productID uuid.UUID) error {
	if _, err := s.requireSeller(ctx, sellerID); err != nil {
		return err
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrProductNotFound
		}
		return fmt.Errorf("load product: %w", err)
	}
	if product.SellerID != sellerID {
		return apperrors.ErrNotOwner
	}

	return s.productRepo.Delete(ctx, productID)
}

// Analytics aggregates every interaction whose product belongs to the
// seller. TotalViews counts all actions, purchases included, so the
// conversion denominator grows with checkout activity.
func (s *sellerService) Analytics(ctx context.Context, sellerID uuid.UUID) (*Analytics, error) {
	if _, err := s.requireSeller(ctx, sellerID); err != nil {
		return nil, err
	}

	records, err := s.interactionRepo.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("load interactions: %w", err)
	}

	stats := &Analytics{
		TotalViews:   len(records),
		TotalRevenue: decimal.Zero,
	}
	for _, rec := range records {
		switch rec.Action {
		case model.SwipeActionRight:
			stats.TotalSwipesRight++
		case model.SwipeActionLeft:
			stats.TotalSwipesLeft++
		case model.SwipeActionPurchased:
			stats.TotalPurchases++
			stats.TotalRevenue = stats.TotalRevenue.Add(rec.Product.Price)
		}
	}

	stats.ConversionRate = conversionRate(stats.TotalSwipesRight, stats.TotalViews)
	return stats, nil
}

// conversionRate renders right swipes over total views as a percentage with
// one decimal place, "0.0" when there are no views.
func conversionRate(right, views int) string {
	if views == 0 {
		return "0.0"
	}
	rate := decimal.NewFromInt(int64(right)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(views)))
	return rate.Round(1).StringFixed(1)
}
