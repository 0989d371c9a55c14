package postgres

import (
	"context"
	"time"

	"github.com/lightone/tce-backend/internal/domain"
	"gorm.io/gorm"
)

type visitRepository struct {
	db *gorm.DB
}

func NewVisitRepository(db *gorm.DB) *visitRepository {
	return &visitRepository{db: db}
}

func (r *visitRepository) Create(ctx context.Context, visit *domain.Visit) error {
	return r.db.WithContext(ctx).Create(visit).Error
}

func (r *visitRepository) ExistsSince(ctx context.Context, ip string, since time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Visit{}).
		Where("ip = ? AND created_at >= ?", ip, since).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *visitRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Visit{}).Count(&count).Error
	return count, err
}

func (r *visitRepository) CountByDevice(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Device string
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&domain.Visit{}).
		Select("device, COUNT(*) AS count").
		Group("device").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Device] = row.Count
	}
	return counts, nil
}

func (r *visitRepository) TopCountries(ctx context.Context, limit int) ([]domain.CountryStat, error) {
	var rows []struct {
		Country string
		Count   int64
	}
	err := r.db.WithContext(ctx).Model(&domain.Visit{}).
		Select("country, COUNT(*) AS count").
		Group("country").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := make([]domain.CountryStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, domain.CountryStat{Country: row.Country, Visitors: row.Count})
	}
	return stats, nil
}
