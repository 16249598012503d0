package repositories

import (
	"context"

	"github.com/maxaizer/jobfit/internal/domain/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Profiles struct {
	db *gorm.DB
}

func NewProfilesRepository(db *gorm.DB) *Profiles {
	return &Profiles{db: db}
}

func (repo *Profiles) Get(ctx context.Context, id string) (*models.StoredProfile, error) {
	var profile models.StoredProfile
	if err := repo.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (repo *Profiles) Save(ctx context.Context, profile models.StoredProfile) error {
	profile.UploadedAt = profile.UploadedAt.UTC()
	return repo.db.WithContext(ctx).Save(&profile).Error
}
