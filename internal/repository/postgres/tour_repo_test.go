package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lightone/tce-backend/internal/domain"
	"github.com/lightone/tce-backend/internal/repository"
	"github.com/lightone/tce-backend/internal/repository/postgres"
	"github.com/lightone/tce-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedTour(t *testing.T, repo repository.TourRepository, title string, createdAt time.Time) *domain.Tour {
	t.Helper()

	tour := &domain.Tour{
		ID:          uuid.New(),
		Title:       title,
		Description: fmt.Sprintf("Description for %s", title),
		Price:       "$100.00",
		Link:        "https://example.com/tours",
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	require.NoError(t, repo.Create(context.Background(), tour))
	return tour
}

func TestTourRepository_List(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewTourRepository(testDB.DB)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	seedTour(t, repo, "Volcano Trek", base)
	seedTour(t, repo, "Whale Watching", base.Add(time.Minute))
	seedTour(t, repo, "Glacier Lagoon Cruise", base.Add(2*time.Minute))
	seedTour(t, repo, "Glacier Ice Cave", base.Add(3*time.Minute))

	t.Run("newest first", func(t *testing.T) {
		tours, total, err := repo.List(ctx, repository.ListParams{Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		require.Len(t, tours, 4)
		assert.Equal(t, "Glacier Ice Cave", tours[0].Title)
		assert.Equal(t, "Volcano Trek", tours[3].Title)
	})

	t.Run("pagination", func(t *testing.T) {
		page1, total, err := repo.List(ctx, repository.ListParams{Page: 1, Limit: 3})
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		assert.Len(t, page1, 3)

		page2, _, err := repo.List(ctx, repository.ListParams{Page: 2, Limit: 3})
		require.NoError(t, err)
		require.Len(t, page2, 1)
		assert.Equal(t, "Volcano Trek", page2[0].Title)
	})

	t.Run("search is case-insensitive", func(t *testing.T) {
		tours, total, err := repo.List(ctx, repository.ListParams{Page: 1, Limit: 10, Search: "gLaCiEr"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, tours, 2)
	})

	t.Run("search matches description", func(t *testing.T) {
		tours, total, err := repo.List(ctx, repository.ListParams{Page: 1, Limit: 10, Search: "description for whale"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, tours, 1)
		assert.Equal(t, "Whale Watching", tours[0].Title)
	})

	t.Run("no matches", func(t *testing.T) {
		tours, total, err := repo.List(ctx, repository.ListParams{Page: 1, Limit: 10, Search: "submarine"})
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.Empty(t, tours)
	})
}

func TestTourRepository_CRUD(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewTourRepository(testDB.DB)
	ctx := context.Background()

	tour := seedTour(t, repo, "Roundtrip", time.Now())

	fetched, err := repo.GetByID(ctx, tour.ID)
	require.NoError(t, err)
	assert.Equal(t, tour.Title, fetched.Title)

	image := "/img/tours/cover.jpg"
	fetched.Image = &image
	require.NoError(t, repo.Update(ctx, fetched))

	fetched, err = repo.GetByID(ctx, tour.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.Image)
	assert.Equal(t, image, *fetched.Image)

	require.NoError(t, repo.Delete(ctx, tour.ID))

	_, err = repo.GetByID(ctx, tour.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
