package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lightone/tce-backend/internal/domain"
	"github.com/lightone/tce-backend/internal/repository"
	"github.com/lightone/tce-backend/internal/upload"
)

type BlogService struct {
	blogRepo repository.BlogRepository
	cleaner  *upload.Cleaner
}

func NewBlogService(blogRepo repository.BlogRepository, cleaner *upload.Cleaner) *BlogService {
	return &BlogService{
		blogRepo: blogRepo,
		cleaner:  cleaner,
	}
}

type CreatePostInput struct {
	Title    string
	Content  string
	Image    string
	AuthorID uuid.UUID
}

type UpdatePostInput struct {
	Title   string
	Content string
	Image   *string
}

func (s *BlogService) Create(ctx context.Context, input CreatePostInput) (*domain.BlogPost, error) {
	if input.Title == "" || input.Content == "" || input.Image == "" {
		return nil, domain.ErrMissingFields
	}

	post := &domain.BlogPost{
		ID:        uuid.New(),
		Title:     input.Title,
		Content:   input.Content,
		Image:     input.Image,
		AuthorID:  input.AuthorID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.blogRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	// Re-read to pick up the author association for the response.
	return s.blogRepo.GetByID(ctx, post.ID)
}

func (s *BlogService) Get(ctx context.Context, id uuid.UUID) (*domain.BlogPost, error) {
	return s.blogRepo.GetByID(ctx, id)
}

func (s *BlogService) GetAll(ctx context.Context) ([]*domain.BlogPost, error) {
	return s.blogRepo.GetAll(ctx)
}

func (s *BlogService) Update(ctx context.Context, id uuid.UUID, input UpdatePostInput) (*domain.BlogPost, error) {
	if input.Title == "" && input.Content == "" && input.Image == nil {
		return nil, domain.ErrNoUpdateFields
	}

	post, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		post.Title = input.Title
	}
	if input.Content != "" {
		post.Content = input.Content
	}

	var oldImage string
	if input.Image != nil {
		oldImage = post.Image
		post.Image = *input.Image
	}
	post.UpdatedAt = time.Now()

	// Detach the association before save so gorm does not try to upsert the author.
	post.Author = nil

	if err := s.blogRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	if oldImage != "" {
		s.cleaner.Remove(oldImage)
	}

	return s.blogRepo.GetByID(ctx, id)
}

func (s *BlogService) Delete(ctx context.Context, id uuid.UUID) error {
	post, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.blogRepo.Delete(ctx, id); err != nil {
		return err
	}

	if post.Image != "" {
		s.cleaner.Remove(post.Image)
	}

	return nil
}
