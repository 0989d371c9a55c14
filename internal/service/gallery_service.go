package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lightone/tce-backend/internal/domain"
	"github.com/lightone/tce-backend/internal/repository"
	"github.com/lightone/tce-backend/internal/upload"
)

type GalleryService struct {
	galleryRepo repository.GalleryRepository
	cleaner     *upload.Cleaner
}

func NewGalleryService(galleryRepo repository.GalleryRepository, cleaner *upload.Cleaner) *GalleryService {
	return &GalleryService{
		galleryRepo: galleryRepo,
		cleaner:     cleaner,
	}
}

func (s *GalleryService) Create(ctx context.Context, src, alt string) (*domain.GalleryImage, error) {
	if src == "" {
		return nil, domain.ErrMissingFields
	}

	image := &domain.GalleryImage{
		ID:        uuid.New(),
		Src:       src,
		Alt:       alt,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.galleryRepo.Create(ctx, image); err != nil {
		return nil, err
	}

	return image, nil
}

func (s *GalleryService) GetAll(ctx context.Context) ([]*domain.GalleryImage, error) {
	return s.galleryRepo.GetAll(ctx)
}

func (s *GalleryService) Delete(ctx context.Context, id uuid.UUID) error {
	image, err := s.galleryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.galleryRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.cleaner.Remove(image.Src)
	return nil
}
