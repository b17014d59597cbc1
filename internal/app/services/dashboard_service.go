package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/unistone/campus/internal/app/models"
	"github.com/unistone/campus/internal/app/repositories"
)

// Feed sizing for the home dashboard.
const (
	feedEventCount = 3
	feedNewsCount  = 2
)

// DashboardFeed is the member home screen payload
type DashboardFeed struct {
	User   models.User          `json:"user"`
	Events []models.CampusEvent `json:"events"`
	News   []models.NewsArticle `json:"news"`
}

// DashboardService defines the interface for the member home feed
type DashboardService interface {
	GetFeed(ctx context.Context, userID string) (*DashboardFeed, error)
}

// dashboardServiceImpl implements DashboardService
type dashboardServiceImpl struct {
	userRepo  repositories.IUserRepository
	eventRepo *repositories.EventRepository
	newsRepo  *repositories.NewsRepository
	logger    zerolog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	userRepo repositories.IUserRepository,
	eventRepo *repositories.EventRepository,
	newsRepo *repositories.NewsRepository,
	logger zerolog.Logger,
) DashboardService {
	return &dashboardServiceImpl{
		userRepo:  userRepo,
		eventRepo: eventRepo,
		newsRepo:  newsRepo,
		logger:    logger,
	}
}

// GetFeed assembles the home screen: the user's record plus the first few
// events and news articles.
func (s *dashboardServiceImpl) GetFeed(ctx context.Context, userID string) (*DashboardFeed, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	events, err := s.eventRepo.List()
	if err != nil {
		return nil, err
	}
	if len(events) > feedEventCount {
		events = events[:feedEventCount]
	}

	news, err := s.newsRepo.List()
	if err != nil {
		return nil, err
	}
	if len(news) > feedNewsCount {
		news = news[:feedNewsCount]
	}

	return &DashboardFeed{
		User:   *user,
		Events: events,
		News:   news,
	}, nil
}
