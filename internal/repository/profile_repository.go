package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"swipeshop/internal/model"
)

// ProfileRepository defines profile persistence operations.
type ProfileRepository interface {
	Create(ctx context.Context, profile *model.Profile) error
	Update(ctx context.Context, profile *model.Profile) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	FindByEmail(ctx context.Context, email string) (*model.Profile, error)
	UpsertByEmail(ctx context.Context, profile *model.Profile) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Create creates a new profile.
func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// Update updates an existing profile.
func (r *profileRepository) Update(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

// FindByID finds a profile by ID.
func (r *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindByEmail finds a profile by email.
func (r *profileRepository) FindByEmail(ctx context.Context, email string) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpsertByEmail creates the profile on first sign-in or refreshes its
// mutable fields on subsequent ones. The role is fixed at creation and not
// overwritten by later upserts.
func (r *profileRepository) UpsertByEmail(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).
		Where("email = ?", profile.Email).
		Attrs(map[string]interface{}{
			"id":            profile.ID,
			"name":          profile.Name,
			"role":          profile.Role,
			"password_hash": profile.PasswordHash,
		}).
		FirstOrCreate(profile).Error
}
