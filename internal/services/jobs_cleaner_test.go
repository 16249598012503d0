package services

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCleanupRepository struct {
	mock.Mock
}

func (m *mockCleanupRepository) RemoveOlderThan(ctx context.Context, expirationTime time.Time) (int64, error) {
	args := m.Called(ctx, expirationTime)
	return args.Get(0).(int64), args.Error(1)
}

func Test_JobsCleaner_InvalidSettings_Rejected(t *testing.T) {
	_, err := NewJobsCleaner(&mockCleanupRepository{}, 0, "0 3 * * *")
	assert.Error(t, err)

	_, err = NewJobsCleaner(&mockCleanupRepository{}, 30, "whenever")
	assert.Error(t, err)
}

func Test_JobsCleaner_Clean_UsesRetentionWindow(t *testing.T) {
	repo := &mockCleanupRepository{}
	repo.On("RemoveOlderThan", mock.Anything, fixedNow.AddDate(0, 0, -30)).Return(int64(4), nil)

	cleaner, err := NewJobsCleaner(repo, 30, "0 3 * * *")
	require.NoError(t, err)
	defer cleaner.Stop()
	cleaner.now = func() time.Time { return fixedNow }

	removed, err := cleaner.Clean(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), removed)
	repo.AssertExpectations(t)
}

func Test_JobsCleaner_RepositoryFails_ReturnsError(t *testing.T) {
	repo := &mockCleanupRepository{}
	repo.On("RemoveOlderThan", mock.Anything, mock.Anything).Return(int64(0), errors.New("database is locked"))

	cleaner, err := NewJobsCleaner(repo, 30, "0 3 * * *")
	require.NoError(t, err)
	defer cleaner.Stop()

	_, err = cleaner.Clean(context.Background())

	assert.Error(t, err)
}
