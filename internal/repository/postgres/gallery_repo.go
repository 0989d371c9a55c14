package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/lightone/tce-backend/internal/domain"
	"gorm.io/gorm"
)

type galleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *galleryRepository {
	return &galleryRepository{db: db}
}

func (r *galleryRepository) Create(ctx context.Context, image *domain.GalleryImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *galleryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.GalleryImage, error) {
	var image domain.GalleryImage
	err := r.db.WithContext(ctx).First(&image, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *galleryRepository) GetAll(ctx context.Context) ([]*domain.GalleryImage, error) {
	var images []*domain.GalleryImage
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *galleryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.GalleryImage{}, "id = ?", id).Error
}
