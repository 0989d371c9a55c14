package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/lightone/tce-backend/internal/domain"
	"github.com/lightone/tce-backend/internal/repository"
	"gorm.io/gorm"
)

type tourRepository struct {
	db *gorm.DB
}

func NewTourRepository(db *gorm.DB) *tourRepository {
	return &tourRepository{db: db}
}

func (r *tourRepository) Create(ctx context.Context, tour *domain.Tour) error {
	return r.db.WithContext(ctx).Create(tour).Error
}

func (r *tourRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tour, error) {
	var tour domain.Tour
	err := r.db.WithContext(ctx).First(&tour, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tour, nil
}

func (r *tourRepository) List(ctx context.Context, params repository.ListParams) ([]*domain.Tour, int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.Tour{})

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tours []*domain.Tour
	err := query.
		Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&tours).Error
	if err != nil {
		return nil, 0, err
	}

	return tours, total, nil
}

func (r *tourRepository) Update(ctx context.Context, tour *domain.Tour) error {
	return r.db.WithContext(ctx).Save(tour).Error
}

func (r *tourRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Tour{}, "id = ?", id).Error
}
