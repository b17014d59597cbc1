package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/unistone/campus/internal/app/models"
	"github.com/unistone/campus/internal/app/models/dto"
	"github.com/unistone/campus/internal/app/repositories"
)

// Editorial defaults applied when a news article is published without
// source, read time or category.
const (
	defaultNewsSource   = "Admin"
	defaultNewsReadTime = "3 min"
	defaultNewsCategory = "Tech"
)

// NewsService defines the interface for news feed operations
type NewsService interface {
	ListNews(ctx context.Context) ([]models.NewsArticle, error)
	GetNews(ctx context.Context, id string) (*models.NewsArticle, error)
	CreateNews(ctx context.Context, req *dto.CreateNewsRequest) (*models.NewsArticle, error)
	UpdateNews(ctx context.Context, id string, req *dto.UpdateNewsRequest) (*models.NewsArticle, error)
	DeleteNews(ctx context.Context, id string) error
}

// newsServiceImpl implements NewsService
type newsServiceImpl struct {
	newsRepo *repositories.NewsRepository
	logger   zerolog.Logger
}

// NewNewsService creates a new NewsService
func NewNewsService(newsRepo *repositories.NewsRepository, logger zerolog.Logger) NewsService {
	return &newsServiceImpl{
		newsRepo: newsRepo,
		logger:   logger,
	}
}

// ListNews returns the full news feed
func (s *newsServiceImpl) ListNews(ctx context.Context) ([]models.NewsArticle, error) {
	return s.newsRepo.List()
}

// GetNews returns one article by ID
func (s *newsServiceImpl) GetNews(ctx context.Context, id string) (*models.NewsArticle, error) {
	return s.newsRepo.FindByID(id)
}

func newsFromRequest(id string, req *dto.CreateNewsRequest) *models.NewsArticle {
	article := &models.NewsArticle{
		ID:       id,
		Title:    req.Title,
		Source:   req.Source,
		Category: req.Category,
		URL:      req.URL,
		Image:    req.Image,
		Content:  req.Content,
		ReadTime: req.ReadTime,
	}
	if article.Source == "" {
		article.Source = defaultNewsSource
	}
	if article.ReadTime == "" {
		article.ReadTime = defaultNewsReadTime
	}
	if article.Category == "" {
		article.Category = defaultNewsCategory
	}
	return article
}

// CreateNews publishes an article to the feed
func (s *newsServiceImpl) CreateNews(ctx context.Context, req *dto.CreateNewsRequest) (*models.NewsArticle, error) {
	article := newsFromRequest(newID("NWS"), req)
	if err := s.newsRepo.Insert(article); err != nil {
		return nil, err
	}

	s.logger.Info().Str("newsID", article.ID).Msg("News article published")
	return article, nil
}

// UpdateNews replaces an article
func (s *newsServiceImpl) UpdateNews(ctx context.Context, id string, req *dto.UpdateNewsRequest) (*models.NewsArticle, error) {
	article := newsFromRequest(id, req)
	if err := s.newsRepo.Update(article); err != nil {
		return nil, err
	}
	return article, nil
}

// DeleteNews removes an article from the feed
func (s *newsServiceImpl) DeleteNews(ctx context.Context, id string) error {
	if err := s.newsRepo.Delete(id); err != nil {
		return err
	}

	s.logger.Info().Str("newsID", id).Msg("News article deleted")
	return nil
}
