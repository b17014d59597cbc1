package models

// ApplicantStatus tracks where an application stands.
type ApplicantStatus string

const (
	ApplicantPending     ApplicantStatus = "pending"
	ApplicantShortlisted ApplicantStatus = "shortlisted"
	ApplicantRejected    ApplicantStatus = "rejected"
)

// Applicant is a student who applied to a job posting.
type Applicant struct {
	StudentID    string          `json:"studentId"`
	StudentName  string          `json:"studentName"`
	StudentImage string          `json:"studentImage,omitempty"`
	AppliedDate  string          `json:"appliedDate"`
	Status       ApplicantStatus `json:"status"`
}

// JobType distinguishes full-time roles from internships.
type JobType string

const (
	JobFullTime   JobType = "full-time"
	JobInternship JobType = "internship"
)

// Job is an opening on the placements board.
type Job struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Company    string      `json:"company"`
	Type       JobType     `json:"type"`
	Location   string      `json:"location"`
	Salary     string      `json:"salary,omitempty"`
	Tags       []string    `json:"tags"`
	Niche      string      `json:"niche"`
	Applicants []Applicant `json:"applicants"`
}
