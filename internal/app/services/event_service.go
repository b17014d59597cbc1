package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/unistone/campus/internal/app/models"
	"github.com/unistone/campus/internal/app/models/dto"
	"github.com/unistone/campus/internal/app/repositories"
)

// EventService defines the interface for campus event operations
type EventService interface {
	ListEvents(ctx context.Context) ([]models.CampusEvent, error)
	GetEvent(ctx context.Context, id string) (*models.CampusEvent, error)
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*models.CampusEvent, error)
	UpdateEvent(ctx context.Context, id string, req *dto.UpdateEventRequest) (*models.CampusEvent, error)
	DeleteEvent(ctx context.Context, id string) error
	RegisterForEvent(ctx context.Context, id string) (*models.CampusEvent, error)
}

// eventServiceImpl implements EventService
type eventServiceImpl struct {
	eventRepo *repositories.EventRepository
	logger    zerolog.Logger
}

// NewEventService creates a new EventService
func NewEventService(eventRepo *repositories.EventRepository, logger zerolog.Logger) EventService {
	return &eventServiceImpl{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// ListEvents returns all campus events
func (s *eventServiceImpl) ListEvents(ctx context.Context) ([]models.CampusEvent, error) {
	return s.eventRepo.List()
}

// GetEvent returns one event by ID
func (s *eventServiceImpl) GetEvent(ctx context.Context, id string) (*models.CampusEvent, error) {
	return s.eventRepo.FindByID(id)
}

func eventFromRequest(id string, registeredCount int, req *dto.CreateEventRequest) *models.CampusEvent {
	eventType := models.EventType(req.Type)
	if eventType == "" {
		eventType = models.EventWorkshop
	}
	return &models.CampusEvent{
		ID:              id,
		Title:           req.Title,
		Description:     req.Description,
		Date:            req.Date,
		Time:            req.Time,
		Location:        req.Location,
		Image:           req.Image,
		RegisteredCount: registeredCount,
		Type:            eventType,
	}
}

// CreateEvent schedules an event. New events always start with zero
// registrations.
func (s *eventServiceImpl) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*models.CampusEvent, error) {
	event := eventFromRequest(newID("EVT"), 0, req)
	if err := s.eventRepo.Insert(event); err != nil {
		return nil, err
	}

	s.logger.Info().Str("eventID", event.ID).Msg("Event created")
	return event, nil
}

// UpdateEvent replaces an event record, keeping its registration counter
func (s *eventServiceImpl) UpdateEvent(ctx context.Context, id string, req *dto.UpdateEventRequest) (*models.CampusEvent, error) {
	existing, err := s.eventRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	event := eventFromRequest(id, existing.RegisteredCount, req)
	if err := s.eventRepo.Update(event); err != nil {
		return nil, err
	}
	return event, nil
}

// DeleteEvent removes an event
func (s *eventServiceImpl) DeleteEvent(ctx context.Context, id string) error {
	if err := s.eventRepo.Delete(id); err != nil {
		return err
	}

	s.logger.Info().Str("eventID", id).Msg("Event deleted")
	return nil
}

// RegisterForEvent bumps the registration counter for an event
func (s *eventServiceImpl) RegisterForEvent(ctx context.Context, id string) (*models.CampusEvent, error) {
	event, err := s.eventRepo.Register(id)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Str("eventID", id).Int("registeredCount", event.RegisteredCount).Msg("Event registration recorded")
	return event, nil
}
