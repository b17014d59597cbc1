package repositories

import (
	"sync"

	"github.com/unistone/campus/internal/app/models"
	"github.com/unistone/campus/internal/store"
)

// SettingsRepository stores the platform settings slice
type SettingsRepository struct {
	db *store.Store
	mu sync.Mutex
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *store.Store) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the current settings, falling back to the defaults when
// nothing has been persisted yet
func (r *SettingsRepository) Get() (models.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var settings models.Settings
	r.db.Read(KeySettings, &settings, models.DefaultSettings())
	return settings, nil
}

// Save persists the settings slice
func (r *SettingsRepository) Save(settings models.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.db.Write(KeySettings, settings)
	return nil
}
