package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lightone/tce-backend/internal/domain"
	"github.com/lightone/tce-backend/internal/repository"
)

type ContactService struct {
	contactRepo repository.ContactRepository
}

func NewContactService(contactRepo repository.ContactRepository) *ContactService {
	return &ContactService{contactRepo: contactRepo}
}

type CreateContactInput struct {
	Name    string
	Email   string
	Phone   string
	Tour    string
	Message string
}

func (s *ContactService) Create(ctx context.Context, input CreateContactInput) (*domain.ContactMessage, error) {
	if input.Name == "" || input.Email == "" || input.Message == "" {
		return nil, domain.ErrMissingFields
	}

	message := &domain.ContactMessage{
		ID:        uuid.New(),
		FullName:  input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Tour:      input.Tour,
		Message:   input.Message,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.contactRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	return message, nil
}

func (s *ContactService) Get(ctx context.Context, id uuid.UUID) (*domain.ContactMessage, error) {
	return s.contactRepo.GetByID(ctx, id)
}

func (s *ContactService) GetAll(ctx context.Context) ([]*domain.ContactMessage, error) {
	return s.contactRepo.GetAll(ctx)
}

func (s *ContactService) Delete(ctx context.Context, id uuid.UUID) error {
	// Look it up first so a missing record surfaces as not-found.
	if _, err := s.contactRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.contactRepo.Delete(ctx, id)
}
