package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/unistone/campus/internal/app/models"
	"github.com/unistone/campus/internal/app/models/dto"
	"github.com/unistone/campus/internal/app/repositories"
)

// BuildingService defines the interface for campus map operations
type BuildingService interface {
	ListBuildings(ctx context.Context) ([]models.CampusBuilding, error)
	GetBuilding(ctx context.Context, id string) (*models.CampusBuilding, error)
	CreateBuilding(ctx context.Context, req *dto.CreateBuildingRequest) (*models.CampusBuilding, error)
	UpdateBuilding(ctx context.Context, id string, req *dto.UpdateBuildingRequest) (*models.CampusBuilding, error)
	DeleteBuilding(ctx context.Context, id string) error
}

// buildingServiceImpl implements BuildingService
type buildingServiceImpl struct {
	buildingRepo *repositories.BuildingRepository
	logger       zerolog.Logger
}

// NewBuildingService creates a new BuildingService
func NewBuildingService(buildingRepo *repositories.BuildingRepository, logger zerolog.Logger) BuildingService {
	return &buildingServiceImpl{
		buildingRepo: buildingRepo,
		logger:       logger,
	}
}

// ListBuildings returns every building on the campus map
func (s *buildingServiceImpl) ListBuildings(ctx context.Context) ([]models.CampusBuilding, error) {
	return s.buildingRepo.List()
}

// GetBuilding returns one building by ID
func (s *buildingServiceImpl) GetBuilding(ctx context.Context, id string) (*models.CampusBuilding, error) {
	return s.buildingRepo.FindByID(id)
}

func buildingFromRequest(id string, req *dto.CreateBuildingRequest) *models.CampusBuilding {
	return &models.CampusBuilding{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Image:       req.Image,
		Floors:      req.Floors,
		Departments: req.Departments,
		Facilities:  req.Facilities,
		MapCoords:   req.MapCoords,
		Authorities: req.Authorities,
	}
}

// CreateBuilding adds a building to the map
func (s *buildingServiceImpl) CreateBuilding(ctx context.Context, req *dto.CreateBuildingRequest) (*models.CampusBuilding, error) {
	building := buildingFromRequest(newID("BLD"), req)
	if err := s.buildingRepo.Insert(building); err != nil {
		return nil, err
	}

	s.logger.Info().Str("buildingID", building.ID).Msg("Building created")
	return building, nil
}

// UpdateBuilding replaces a building record
func (s *buildingServiceImpl) UpdateBuilding(ctx context.Context, id string, req *dto.UpdateBuildingRequest) (*models.CampusBuilding, error) {
	building := buildingFromRequest(id, req)
	if err := s.buildingRepo.Update(building); err != nil {
		return nil, err
	}
	return building, nil
}

// DeleteBuilding removes a building from the map
func (s *buildingServiceImpl) DeleteBuilding(ctx context.Context, id string) error {
	if err := s.buildingRepo.Delete(id); err != nil {
		return err
	}

	s.logger.Info().Str("buildingID", id).Msg("Building deleted")
	return nil
}
