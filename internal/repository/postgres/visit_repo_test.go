package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lightone/tce-backend/internal/domain"
	"github.com/lightone/tce-backend/internal/repository"
	"github.com/lightone/tce-backend/internal/repository/postgres"
	"github.com/lightone/tce-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedVisit(t *testing.T, repo repository.VisitRepository, ip, device, country string, createdAt time.Time) {
	t.Helper()

	require.NoError(t, repo.Create(context.Background(), &domain.Visit{
		ID:        uuid.New(),
		IP:        ip,
		Device:    device,
		Country:   country,
		CreatedAt: createdAt,
	}))
}

func TestVisitRepository_ExistsSince(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewVisitRepository(testDB.DB)
	ctx := context.Background()

	now := time.Now()
	seedVisit(t, repo, "203.0.113.5", domain.DeviceDesktop, "IS", now.Add(-10*time.Minute))
	seedVisit(t, repo, "203.0.113.6", domain.DeviceMobile, "DE", now.Add(-2*time.Hour))

	tests := []struct {
		name     string
		ip       string
		since    time.Time
		expected bool
	}{
		{name: "recent visit inside window", ip: "203.0.113.5", since: now.Add(-30 * time.Minute), expected: true},
		{name: "old visit outside window", ip: "203.0.113.6", since: now.Add(-30 * time.Minute), expected: false},
		{name: "unknown ip", ip: "203.0.113.7", since: now.Add(-30 * time.Minute), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exists, err := repo.ExistsSince(ctx, tt.ip, tt.since)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, exists)
		})
	}
}

func TestVisitRepository_Aggregations(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewVisitRepository(testDB.DB)
	ctx := context.Background()

	now := time.Now()
	seedVisit(t, repo, "203.0.113.10", domain.DeviceDesktop, "IS", now)
	seedVisit(t, repo, "203.0.113.11", domain.DeviceDesktop, "IS", now)
	seedVisit(t, repo, "203.0.113.12", domain.DeviceDesktop, "DE", now)
	seedVisit(t, repo, "203.0.113.13", domain.DeviceMobile, "FR", now)
	seedVisit(t, repo, "203.0.113.14", domain.DeviceTablet, "IS", now)

	t.Run("total count", func(t *testing.T) {
		total, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
	})

	t.Run("count by device", func(t *testing.T) {
		counts, err := repo.CountByDevice(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), counts[domain.DeviceDesktop])
		assert.Equal(t, int64(1), counts[domain.DeviceMobile])
		assert.Equal(t, int64(1), counts[domain.DeviceTablet])
	})

	t.Run("top countries ordered by visitors", func(t *testing.T) {
		stats, err := repo.TopCountries(ctx, 10)
		require.NoError(t, err)
		require.Len(t, stats, 3)
		assert.Equal(t, domain.CountryStat{Country: "IS", Visitors: 3}, stats[0])
	})

	t.Run("top countries respects limit", func(t *testing.T) {
		stats, err := repo.TopCountries(ctx, 1)
		require.NoError(t, err)
		require.Len(t, stats, 1)
		assert.Equal(t, "IS", stats[0].Country)
	})
}
