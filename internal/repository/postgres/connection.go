package postgres

import (
	"github.com/lightone/tce-backend/internal/domain"
	"github.com/lightone/tce-backend/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables
	err = db.AutoMigrate(
		&domain.User{},
		&domain.Tour{},
		&domain.BlogPost{},
		&domain.GalleryImage{},
		&domain.Testimonial{},
		&domain.ContactMessage{},
		&domain.Visit{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:        NewUserRepository(db),
		Tour:        NewTourRepository(db),
		Blog:        NewBlogRepository(db),
		Gallery:     NewGalleryRepository(db),
		Testimonial: NewTestimonialRepository(db),
		Contact:     NewContactRepository(db),
		Visit:       NewVisitRepository(db),
	}
}
