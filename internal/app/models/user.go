package models

// UserRole identifies the portal role a user holds.
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleFaculty UserRole = "faculty"
	RoleAdmin   UserRole = "admin"
)

// UserStatus identifies whether a user may sign in.
type UserStatus string

const (
	StatusActive    UserStatus = "Active"
	StatusSuspended UserStatus = "Suspended"
)

// Project is a portfolio item on a user profile.
type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// User is a member of the campus: student, faculty or the administrator.
// Students carry academic counters (attendance, xp, streak) while faculty
// carry an office block. Both share the same record shape.
type User struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Role              UserRole   `json:"role"`
	EnrollmentNo      string     `json:"enrollmentNo,omitempty"`
	Department        string     `json:"department"`
	Attendance        int        `json:"attendance"`
	XP                int        `json:"xp"`
	Streak            int        `json:"streak"`
	Bio               string     `json:"bio,omitempty"`
	Skills            []string   `json:"skills,omitempty"`
	Projects          []Project  `json:"projects,omitempty"`
	GithubURL         string     `json:"githubUrl,omitempty"`
	LinkedinURL       string     `json:"linkedinUrl,omitempty"`
	Image             string     `json:"image,omitempty"`
	CoverImage        string     `json:"coverImage,omitempty"`
	EnrolledCourseIDs []string   `json:"enrolledCourseIds,omitempty"`
	Status            UserStatus `json:"status"`
	Block             string     `json:"block,omitempty"`
}

// IsSuspended reports whether the account is blocked from signing in.
func (u *User) IsSuspended() bool {
	return u.Status == StatusSuspended
}
