package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/lightone/tce-backend/internal/domain"
	"gorm.io/gorm"
)

type testimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) *testimonialRepository {
	return &testimonialRepository{db: db}
}

func (r *testimonialRepository) Create(ctx context.Context, testimonial *domain.Testimonial) error {
	return r.db.WithContext(ctx).Create(testimonial).Error
}

func (r *testimonialRepository) GetAll(ctx context.Context) ([]*domain.Testimonial, error) {
	var testimonials []*domain.Testimonial
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&testimonials).Error
	if err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (r *testimonialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Testimonial{}, "id = ?", id).Error
}
