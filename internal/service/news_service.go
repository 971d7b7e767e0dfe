package service

import (
	"errors"

	"go-poultrigo/internal/model"
	"go-poultrigo/internal/repository"
	"go-poultrigo/pkg/validator"

	"github.com/google/uuid"
)

var ErrNewsNotFound = errors.New("news article not found")

type NewsService interface {
	ListAll() ([]model.News, error)
	ListPublished() ([]model.News, error)
	GetByID(id uuid.UUID) (*model.News, error)
	Create(news *model.News) error
	Update(id uuid.UUID, changes *model.News) (*model.News, error)
	Delete(id uuid.UUID) error
	IncrementViews(id uuid.UUID) error
}

type newsService struct {
	newsRepo repository.NewsRepository
}

func NewNewsService(repo repository.NewsRepository) NewsService {
	return &newsService{newsRepo: repo}
}

func (s *newsService) ListAll() ([]model.News, error) {
	return s.newsRepo.FindAll()
}

func (s *newsService) ListPublished() ([]model.News, error) {
	return s.newsRepo.FindPublished()
}

func (s *newsService) GetByID(id uuid.UUID) (*model.News, error) {
	news, err := s.newsRepo.FindByID(id)
	if err != nil {
		return nil, ErrNewsNotFound
	}
	return news, nil
}

func (s *newsService) Create(news *model.News) error {
	if errs := validator.ValidateStruct(news); len(errs) > 0 {
		return errors.New("title and content are required")
	}
	return s.newsRepo.Create(news)
}

// Update overwrites editable fields. A blank featured image keeps the
// current one so editors don't have to re-upload on every save.
func (s *newsService) Update(id uuid.UUID, changes *model.News) (*model.News, error) {
	existing, err := s.newsRepo.FindByID(id)
	if err != nil {
		return nil, ErrNewsNotFound
	}

	existing.Title = changes.Title
	existing.Excerpt = changes.Excerpt
	existing.Content = changes.Content
	existing.Category = changes.Category
	existing.Tags = changes.Tags
	existing.Published = changes.Published
	if changes.FeaturedImage != "" {
		existing.FeaturedImage = changes.FeaturedImage
	}

	if errs := validator.ValidateStruct(existing); len(errs) > 0 {
		return nil, errors.New("title and content are required")
	}

	if err := s.newsRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *newsService) Delete(id uuid.UUID) error {
	return s.newsRepo.Delete(id)
}

func (s *newsService) IncrementViews(id uuid.UUID) error {
	return s.newsRepo.IncrementViews(id)
}
