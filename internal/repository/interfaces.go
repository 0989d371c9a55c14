package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lightone/tce-backend/internal/domain"
)

// ListParams carries pagination and search options for list queries.
type ListParams struct {
	Page   int
	Limit  int
	Search string
}

func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByEmailOrUsername(ctx context.Context, email, username string) (*domain.User, error)
}

type TourRepository interface {
	Create(ctx context.Context, tour *domain.Tour) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tour, error)
	List(ctx context.Context, params ListParams) ([]*domain.Tour, int64, error)
	Update(ctx context.Context, tour *domain.Tour) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type BlogRepository interface {
	Create(ctx context.Context, post *domain.BlogPost) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BlogPost, error)
	GetAll(ctx context.Context) ([]*domain.BlogPost, error)
	Update(ctx context.Context, post *domain.BlogPost) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type GalleryRepository interface {
	Create(ctx context.Context, image *domain.GalleryImage) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.GalleryImage, error)
	GetAll(ctx context.Context) ([]*domain.GalleryImage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *domain.Testimonial) error
	GetAll(ctx context.Context) ([]*domain.Testimonial, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ContactRepository interface {
	Create(ctx context.Context, message *domain.ContactMessage) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ContactMessage, error)
	GetAll(ctx context.Context) ([]*domain.ContactMessage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type VisitRepository interface {
	Create(ctx context.Context, visit *domain.Visit) error
	ExistsSince(ctx context.Context, ip string, since time.Time) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountByDevice(ctx context.Context) (map[string]int64, error)
	TopCountries(ctx context.Context, limit int) ([]domain.CountryStat, error)
}

type Repositories struct {
	User        UserRepository
	Tour        TourRepository
	Blog        BlogRepository
	Gallery     GalleryRepository
	Testimonial TestimonialRepository
	Contact     ContactRepository
	Visit       VisitRepository
}
