package models

import "time"

// AttendanceSession is a live check-in window opened by a faculty member.
// At most one session is active at a time.
type AttendanceSession struct {
	ID        string    `json:"id"`
	CourseID  string    `json:"courseId"`
	FacultyID string    `json:"facultyId"`
	StartedAt time.Time `json:"startedAt"`
	Present   []string  `json:"present"`
}

// HasMarked reports whether the student already checked in to this session.
func (s *AttendanceSession) HasMarked(studentID string) bool {
	for _, id := range s.Present {
		if id == studentID {
			return true
		}
	}
	return false
}
