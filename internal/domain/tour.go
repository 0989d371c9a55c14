package domain

import (
	"time"

	"github.com/google/uuid"
)

type Tour struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Price       string    `json:"price" gorm:"not null"`
	Link        string    `json:"link" gorm:"not null"`
	Image       *string   `json:"image"` // public path like /img/tours/<name>.jpg
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
