package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lightone/tce-backend/internal/domain"
	"github.com/lightone/tce-backend/internal/repository"
)

type TestimonialService struct {
	testimonialRepo repository.TestimonialRepository
}

func NewTestimonialService(testimonialRepo repository.TestimonialRepository) *TestimonialService {
	return &TestimonialService{testimonialRepo: testimonialRepo}
}

type CreateTestimonialInput struct {
	FullName string
	Content  string
	Country  string
}

func (s *TestimonialService) Create(ctx context.Context, input CreateTestimonialInput) (*domain.Testimonial, error) {
	if input.FullName == "" || input.Content == "" || input.Country == "" {
		return nil, domain.ErrMissingFields
	}
	if len(input.FullName) < 3 {
		return nil, domain.ErrShortFullName
	}
	if len(input.Content) < 10 {
		return nil, domain.ErrShortContent
	}

	testimonial := &domain.Testimonial{
		ID:        uuid.New(),
		FullName:  input.FullName,
		Content:   input.Content,
		Country:   input.Country,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.testimonialRepo.Create(ctx, testimonial); err != nil {
		return nil, err
	}

	return testimonial, nil
}

func (s *TestimonialService) GetAll(ctx context.Context) ([]*domain.Testimonial, error) {
	return s.testimonialRepo.GetAll(ctx)
}

func (s *TestimonialService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.testimonialRepo.Delete(ctx, id)
}
