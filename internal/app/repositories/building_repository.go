package repositories

import (
	"sync"

	"github.com/unistone/campus/internal/app/models"
	"github.com/unistone/campus/internal/pkg/apperrors"
	"github.com/unistone/campus/internal/store"
)

// BuildingRepository stores the campus map building list
type BuildingRepository struct {
	db *store.Store
	mu sync.Mutex
}

// NewBuildingRepository creates a new BuildingRepository
func NewBuildingRepository(db *store.Store) *BuildingRepository {
	return &BuildingRepository{db: db}
}

func (r *BuildingRepository) load() []models.CampusBuilding {
	var buildings []models.CampusBuilding
	r.db.Read(KeyBuildings, &buildings, []models.CampusBuilding{})
	return buildings
}

// List returns all buildings
func (r *BuildingRepository) List() ([]models.CampusBuilding, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(), nil
}

// FindByID returns the building matching the ID
func (r *BuildingRepository) FindByID(id string) (*models.CampusBuilding, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.load() {
		if b.ID == id {
			building := b
			return &building, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

// Insert appends a building to the list
func (r *BuildingRepository) Insert(building *models.CampusBuilding) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	buildings := append(r.load(), *building)
	r.db.Write(KeyBuildings, buildings)
	return nil
}

// Update replaces the stored building matching the ID
func (r *BuildingRepository) Update(building *models.CampusBuilding) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	buildings := r.load()
	for i := range buildings {
		if buildings[i].ID == building.ID {
			buildings[i] = *building
			r.db.Write(KeyBuildings, buildings)
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}

// Delete removes the building matching the ID
func (r *BuildingRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	buildings := r.load()
	for i := range buildings {
		if buildings[i].ID == id {
			buildings = append(buildings[:i], buildings[i+1:]...)
			r.db.Write(KeyBuildings, buildings)
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}
