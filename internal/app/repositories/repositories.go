package repositories

import (
	"github.com/unistone/campus/internal/store"
)

// Store slice keys. Each named slice is persisted independently; there is
// no transactional grouping across keys.
const (
	KeyStudents  = "students"
	KeyFaculty   = "faculty"
	KeyBuildings = "buildings"
	KeyCourses   = "courses"
	KeyEvents    = "events"
	KeyJobs      = "jobs"
	KeyNews      = "news"
	KeySettings  = "settings"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository     *UserRepository
	BuildingRepository *BuildingRepository
	CourseRepository   *CourseRepository
	EventRepository    *EventRepository
	JobRepository      *JobRepository
	NewsRepository     *NewsRepository
	SettingsRepository *SettingsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *store.Store) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db),
		BuildingRepository: NewBuildingRepository(db),
		CourseRepository:   NewCourseRepository(db),
		EventRepository:    NewEventRepository(db),
		JobRepository:      NewJobRepository(db),
		NewsRepository:     NewNewsRepository(db),
		SettingsRepository: NewSettingsRepository(db),
	}
}
