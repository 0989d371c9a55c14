package service

import (
	"context"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lightone/tce-backend/internal/domain"
	"github.com/lightone/tce-backend/internal/repository"
	"github.com/lightone/tce-backend/internal/upload"
)

// Prices look like $99.99 or 99.99.
var priceFormat = regexp.MustCompile(`^\$?\d+(\.\d{2})?$`)

type TourService struct {
	tourRepo repository.TourRepository
	cleaner  *upload.Cleaner
}

func NewTourService(tourRepo repository.TourRepository, cleaner *upload.Cleaner) *TourService {
	return &TourService{
		tourRepo: tourRepo,
		cleaner:  cleaner,
	}
}

type CreateTourInput struct {
	Title       string
	Description string
	Price       string
	Link        string
	Image       *string
}

type UpdateTourInput struct {
	Title       string
	Description string
	Price       string
	Link        string
	Image       *string
}

func (s *TourService) Create(ctx context.Context, input CreateTourInput) (*domain.Tour, error) {
	if input.Title == "" || input.Description == "" || input.Price == "" || input.Link == "" {
		return nil, domain.ErrMissingFields
	}
	if !priceFormat.MatchString(strings.TrimSpace(input.Price)) {
		return nil, domain.ErrInvalidPrice
	}
	if !validLink(input.Link) {
		return nil, domain.ErrInvalidLink
	}

	tour := &domain.Tour{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Price:       strings.TrimSpace(input.Price),
		Link:        strings.TrimSpace(input.Link),
		Image:       input.Image,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.tourRepo.Create(ctx, tour); err != nil {
		return nil, err
	}

	return tour, nil
}

func (s *TourService) Get(ctx context.Context, id uuid.UUID) (*domain.Tour, error) {
	return s.tourRepo.GetByID(ctx, id)
}

func (s *TourService) List(ctx context.Context, params repository.ListParams) ([]*domain.Tour, int64, error) {
	return s.tourRepo.List(ctx, params)
}

// Update applies the provided fields. When a new image reference arrives, the
// previous file is scheduled for removal only after the record update commits.
func (s *TourService) Update(ctx context.Context, id uuid.UUID, input UpdateTourInput) (*domain.Tour, error) {
	if input.Title == "" && input.Description == "" && input.Price == "" && input.Link == "" && input.Image == nil {
		return nil, domain.ErrNoUpdateFields
	}

	tour, err := s.tourRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		tour.Title = strings.TrimSpace(input.Title)
	}
	if input.Description != "" {
		tour.Description = strings.TrimSpace(input.Description)
	}
	if input.Price != "" {
		if !priceFormat.MatchString(strings.TrimSpace(input.Price)) {
			return nil, domain.ErrInvalidPrice
		}
		tour.Price = strings.TrimSpace(input.Price)
	}
	if input.Link != "" {
		if !validLink(input.Link) {
			return nil, domain.ErrInvalidLink
		}
		tour.Link = strings.TrimSpace(input.Link)
	}

	var oldImage string
	if input.Image != nil {
		if tour.Image != nil {
			oldImage = *tour.Image
		}
		tour.Image = input.Image
	}
	tour.UpdatedAt = time.Now()

	if err := s.tourRepo.Update(ctx, tour); err != nil {
		return nil, err
	}

	if oldImage != "" {
		s.cleaner.Remove(oldImage)
	}

	return tour, nil
}

func (s *TourService) Delete(ctx context.Context, id uuid.UUID) error {
	tour, err := s.tourRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.tourRepo.Delete(ctx, id); err != nil {
		return err
	}

	if tour.Image != nil {
		s.cleaner.Remove(*tour.Image)
	}

	return nil
}

func validLink(link string) bool {
	u, err := url.Parse(strings.TrimSpace(link))
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
