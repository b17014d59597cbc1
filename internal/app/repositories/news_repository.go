package repositories

import (
	"sync"

	"github.com/unistone/campus/internal/app/models"
	"github.com/unistone/campus/internal/pkg/apperrors"
	"github.com/unistone/campus/internal/store"
)

// NewsRepository stores the campus news feed
type NewsRepository struct {
	db *store.Store
	mu sync.Mutex
}

// NewNewsRepository creates a new NewsRepository
func NewNewsRepository(db *store.Store) *NewsRepository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) load() []models.NewsArticle {
	var articles []models.NewsArticle
	r.db.Read(KeyNews, &articles, []models.NewsArticle{})
	return articles
}

// List returns all news articles
func (r *NewsRepository) List() ([]models.NewsArticle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(), nil
}

// FindByID returns the article matching the ID
func (r *NewsRepository) FindByID(id string) (*models.NewsArticle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.load() {
		if a.ID == id {
			article := a
			return &article, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

// Insert prepends an article so the feed stays newest first
func (r *NewsRepository) Insert(article *models.NewsArticle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	articles := append([]models.NewsArticle{*article}, r.load()...)
	r.db.Write(KeyNews, articles)
	return nil
}

// Update replaces the stored article matching the ID
func (r *NewsRepository) Update(article *models.NewsArticle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	articles := r.load()
	for i := range articles {
		if articles[i].ID == article.ID {
			articles[i] = *article
			r.db.Write(KeyNews, articles)
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}

// Delete removes the article matching the ID
func (r *NewsRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	articles := r.load()
	for i := range articles {
		if articles[i].ID == id {
			articles = append(articles[:i], articles[i+1:]...)
			r.db.Write(KeyNews, articles)
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}
