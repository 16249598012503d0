package repositories

import (
	"context"

	"github.com/maxaizer/jobfit/internal/domain/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type State struct {
	db *gorm.DB
}

func NewStateRepository(db *gorm.DB) *State {
	return &State{db: db}
}

func (repo *State) Save(ctx context.Context, id string, value []byte) error {
	return repo.db.WithContext(ctx).Save(&models.StateEntry{
		ID:    id,
		Value: value,
	}).Error
}

// Load returns nil without error when nothing is stored under id.
func (repo *State) Load(ctx context.Context, id string) ([]byte, error) {
	entry := &models.StateEntry{}
	err := repo.db.WithContext(ctx).First(entry, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return entry.Value, nil
}

func (repo *State) Remove(ctx context.Context, id string) error {
	return repo.db.WithContext(ctx).Delete(&models.StateEntry{}, "id = ?", id).Error
}
