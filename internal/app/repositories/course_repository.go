package repositories

import (
	"sync"

	"github.com/unistone/campus/internal/app/models"
	"github.com/unistone/campus/internal/pkg/apperrors"
	"github.com/unistone/campus/internal/store"
)

// CourseRepository stores the course catalogue
type CourseRepository struct {
	db *store.Store
	mu sync.Mutex
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *store.Store) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) load() []models.Course {
	var courses []models.Course
	r.db.Read(KeyCourses, &courses, []models.Course{})
	return courses
}

// List returns all courses
func (r *CourseRepository) List() ([]models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(), nil
}

// FindByID returns the course matching the ID
func (r *CourseRepository) FindByID(id string) (*models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.load() {
		if c.ID == id {
			course := c
			return &course, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

// Insert appends a course to the catalogue
func (r *CourseRepository) Insert(course *models.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	courses := append(r.load(), *course)
	r.db.Write(KeyCourses, courses)
	return nil
}

// Update replaces the stored course matching the ID
func (r *CourseRepository) Update(course *models.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	courses := r.load()
	for i := range courses {
		if courses[i].ID == course.ID {
			courses[i] = *course
			r.db.Write(KeyCourses, courses)
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}

// Delete removes the course matching the ID
func (r *CourseRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	courses := r.load()
	for i := range courses {
		if courses[i].ID == id {
			courses = append(courses[:i], courses[i+1:]...)
			r.db.Write(KeyCourses, courses)
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}
