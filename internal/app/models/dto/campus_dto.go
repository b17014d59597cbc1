package dto

import "github.com/unistone/campus/internal/app/models"

// --- Buildings ---

// CreateBuildingRequest represents data for adding a building to the map
type CreateBuildingRequest struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	Color       string           `json:"color"`
	Image       string           `json:"image"`
	Floors      int              `json:"floors"`
	Departments []string         `json:"departments"`
	Facilities  []string         `json:"facilities"`
	MapCoords   models.MapCoords `json:"mapCoords"`
	Authorities []string         `json:"authorities"`
}

// UpdateBuildingRequest mirrors CreateBuildingRequest for full replacement
type UpdateBuildingRequest = CreateBuildingRequest

// --- Courses ---

// CreateCourseRequest represents data for adding a course
type CreateCourseRequest struct {
	Name        string          `json:"name" binding:"required"`
	Code        string          `json:"code" binding:"required"`
	Instructor  string          `json:"instructor" binding:"required"`
	Description string          `json:"description"`
	Modules     []models.Module `json:"modules"`
}

// UpdateCourseRequest mirrors CreateCourseRequest for full replacement
type UpdateCourseRequest = CreateCourseRequest

// --- Events ---

// CreateEventRequest represents data for scheduling a campus event
type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Image       string `json:"image"`
	Type        string `json:"type" binding:"omitempty,oneof=hackathon workshop competition cultural"`
}

// UpdateEventRequest mirrors CreateEventRequest for full replacement
type UpdateEventRequest = CreateEventRequest

// --- Jobs ---

// CreateJobRequest represents data for posting a job opening
type CreateJobRequest struct {
	Title    string   `json:"title" binding:"required"`
	Company  string   `json:"company" binding:"required"`
	Type     string   `json:"type" binding:"omitempty,oneof=full-time internship"`
	Location string   `json:"location"`
	Salary   string   `json:"salary"`
	Tags     []string `json:"tags"`
	Niche    string   `json:"niche"`
}

// UpdateJobRequest mirrors CreateJobRequest for full replacement
type UpdateJobRequest = CreateJobRequest

// --- News ---

// CreateNewsRequest represents data for publishing a news article.
// Source, category and read time fall back to editorial defaults when empty.
type CreateNewsRequest struct {
	Title    string `json:"title" binding:"required"`
	Source   string `json:"source"`
	Category string `json:"category"`
	URL      string `json:"url"`
	Image    string `json:"image"`
	Content  string `json:"content"`
	ReadTime string `json:"readTime"`
}

// UpdateNewsRequest mirrors CreateNewsRequest for full replacement
type UpdateNewsRequest = CreateNewsRequest
