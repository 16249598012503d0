package repositories

import (
	"context"
	"time"

	"github.com/maxaizer/jobfit/internal/domain/models"
	"github.com/maxaizer/jobfit/internal/events"
	gocache "github.com/patrickmn/go-cache"
)

type profileRepository interface {
	Get(ctx context.Context, id string) (*models.StoredProfile, error)
	Save(ctx context.Context, profile models.StoredProfile) error
}

// CachedProfiles keeps the parsed profile in memory since every analysis reads it.
type CachedProfiles struct {
	repo  profileRepository
	cache *gocache.Cache
}

func NewCachedProfiles(repo profileRepository) *CachedProfiles {
	return &CachedProfiles{repo: repo, cache: gocache.New(10*time.Minute, 20*time.Minute)}
}

func (c *CachedProfiles) Get(ctx context.Context, id string) (*models.StoredProfile, error) {
	if value, found := c.cache.Get(id); found {
		profile := value.(models.StoredProfile)
		return &profile, nil
	}

	profile, err := c.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	c.cache.Set(id, *profile, gocache.DefaultExpiration)
	return profile, nil
}

func (c *CachedProfiles) Save(ctx context.Context, profile models.StoredProfile) error {
	c.cache.Delete(profile.ID)
	return c.repo.Save(ctx, profile)
}

// OnProfileUpdated drops the cached copy so other processes' writes become visible.
func (c *CachedProfiles) OnProfileUpdated(event events.ProfileUpdated) {
	c.cache.Delete(event.ProfileID)
}
