package service

import (
	"github.com/lightone/tce-backend/internal/config"
	"github.com/lightone/tce-backend/internal/repository"
	"github.com/lightone/tce-backend/internal/upload"
	"github.com/lightone/tce-backend/internal/ws"
)

type Services struct {
	Auth        *AuthService
	Tour        *TourService
	Blog        *BlogService
	Gallery     *GalleryService
	Testimonial *TestimonialService
	Contact     *ContactService
	Analytics   *AnalyticsService
}

func NewServices(repos *repository.Repositories, cfg *config.Config, cleaner *upload.Cleaner, hub *ws.Hub) *Services {
	return &Services{
		Auth:        NewAuthService(repos.User, cfg),
		Tour:        NewTourService(repos.Tour, cleaner),
		Blog:        NewBlogService(repos.Blog, cleaner),
		Gallery:     NewGalleryService(repos.Gallery, cleaner),
		Testimonial: NewTestimonialService(repos.Testimonial),
		Contact:     NewContactService(repos.Contact),
		Analytics:   NewAnalyticsService(repos.Visit, hub),
	}
}
