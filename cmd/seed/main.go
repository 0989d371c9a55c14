// Command seed creates the bootstrap admin account so the dashboard is
// reachable on a fresh deployment.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/lightone/tce-backend/internal/config"
	"github.com/lightone/tce-backend/internal/domain"
	"github.com/lightone/tce-backend/internal/repository/postgres"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	repos := postgres.NewRepositories(db)
	ctx := context.Background()

	email := envOr("ADMIN_EMAIL", "admin@example.com")
	username := envOr("ADMIN_USERNAME", "admin")
	password := envOr("ADMIN_PASSWORD", "")
	if password == "" {
		log.Fatal("ADMIN_PASSWORD environment variable is required")
	}

	if existing, err := repos.User.GetByEmailOrUsername(ctx, email, username); err == nil && existing != nil {
		log.Printf("Admin user already exists: %s", existing.Email)
		return
	} else if err != nil && err != gorm.ErrRecordNotFound {
		log.Fatalf("failed to check for existing admin: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	admin := &domain.User{
		ID:           uuid.New(),
		FirstName:    envOr("ADMIN_FIRST_NAME", "Site"),
		LastName:     envOr("ADMIN_LAST_NAME", "Admin"),
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
		IsAdmin:      true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := repos.User.Create(ctx, admin); err != nil {
		log.Fatalf("failed to create admin user: %v", err)
	}

	log.Printf("Admin user created: %s", admin.Email)
}

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
