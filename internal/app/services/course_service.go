package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/unistone/campus/internal/app/models"
	"github.com/unistone/campus/internal/app/models/dto"
	"github.com/unistone/campus/internal/app/repositories"
)

// CourseService defines the interface for course catalogue operations
type CourseService interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, id string) (*models.Course, error)
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	UpdateCourse(ctx context.Context, id string, req *dto.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id string) error
}

// courseServiceImpl implements CourseService
type courseServiceImpl struct {
	courseRepo *repositories.CourseRepository
	logger     zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo *repositories.CourseRepository, logger zerolog.Logger) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
		logger:     logger,
	}
}

// ListCourses returns the full course catalogue
func (s *courseServiceImpl) ListCourses(ctx context.Context) ([]models.Course, error) {
	return s.courseRepo.List()
}

// GetCourse returns one course by ID
func (s *courseServiceImpl) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	return s.courseRepo.FindByID(id)
}

// lectureCount sums the lectures across all modules of a course
func lectureCount(modules []models.Module) int {
	total := 0
	for _, m := range modules {
		total += len(m.Lectures)
	}
	return total
}

func courseFromRequest(id string, req *dto.CreateCourseRequest) *models.Course {
	modules := req.Modules
	if modules == nil {
		modules = []models.Module{}
	}
	return &models.Course{
		ID:            id,
		Name:          req.Name,
		Code:          req.Code,
		Instructor:    req.Instructor,
		Description:   req.Description,
		Modules:       modules,
		LecturesCount: lectureCount(modules),
	}
}

// CreateCourse adds a course to the catalogue
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	course := courseFromRequest(newID("CRS"), req)
	if err := s.courseRepo.Insert(course); err != nil {
		return nil, err
	}

	s.logger.Info().Str("courseID", course.ID).Str("code", course.Code).Msg("Course created")
	return course, nil
}

// UpdateCourse replaces a course record
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id string, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course := courseFromRequest(id, req)
	if err := s.courseRepo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}

// DeleteCourse removes a course from the catalogue
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id string) error {
	if err := s.courseRepo.Delete(id); err != nil {
		return err
	}

	s.logger.Info().Str("courseID", id).Msg("Course deleted")
	return nil
}
