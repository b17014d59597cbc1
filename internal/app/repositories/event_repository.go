package repositories

import (
	"sync"

	"github.com/unistone/campus/internal/app/models"
	"github.com/unistone/campus/internal/pkg/apperrors"
	"github.com/unistone/campus/internal/store"
)

// EventRepository stores the campus event list
type EventRepository struct {
	db *store.Store
	mu sync.Mutex
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *store.Store) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) load() []models.CampusEvent {
	var events []models.CampusEvent
	r.db.Read(KeyEvents, &events, []models.CampusEvent{})
	return events
}

// List returns all events
func (r *EventRepository) List() ([]models.CampusEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(), nil
}

// FindByID returns the event matching the ID
func (r *EventRepository) FindByID(id string) (*models.CampusEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.load() {
		if e.ID == id {
			event := e
			return &event, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

// Insert appends an event to the list
func (r *EventRepository) Insert(event *models.CampusEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	events := append(r.load(), *event)
	r.db.Write(KeyEvents, events)
	return nil
}

// Update replaces the stored event matching the ID
func (r *EventRepository) Update(event *models.CampusEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	events := r.load()
	for i := range events {
		if events[i].ID == event.ID {
			events[i] = *event
			r.db.Write(KeyEvents, events)
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}

// Delete removes the event matching the ID
func (r *EventRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	events := r.load()
	for i := range events {
		if events[i].ID == id {
			events = append(events[:i], events[i+1:]...)
			r.db.Write(KeyEvents, events)
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}

// Register increments the registration counter for an event and returns
// the updated record
func (r *EventRepository) Register(id string) (*models.CampusEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	events := r.load()
	for i := range events {
		if events[i].ID == id {
			events[i].RegisteredCount++
			r.db.Write(KeyEvents, events)
			event := events[i]
			return &event, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}
