package dto

import "time"

// StartAttendanceRequest opens a live check-in window for a course
type StartAttendanceRequest struct {
	CourseID string `json:"courseId" binding:"required"`
}

// AttendanceSessionResponse describes a live or just-closed session
type AttendanceSessionResponse struct {
	ID           string    `json:"id"`
	CourseID     string    `json:"courseId"`
	FacultyID    string    `json:"facultyId"`
	StartedAt    time.Time `json:"startedAt"`
	PresentCount int       `json:"presentCount"`
	Present      []string  `json:"present"`
}

// MarkPresentRequest records a student check-in against the active session
type MarkPresentRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
}
