package dto

// UpdateSettingsRequest carries platform flags and branding from the admin
// console. Pointers distinguish "leave unchanged" from an explicit value.
type UpdateSettingsRequest struct {
	Theme            *string `json:"theme,omitempty"`
	Logo             *string `json:"logo,omitempty"`
	MaintenanceMode  *bool   `json:"maintenanceMode,omitempty"`
	RegistrationOpen *bool   `json:"registrationOpen,omitempty"`
	GuestAccess      *bool   `json:"guestAccess,omitempty"`
}

// ReportsResponse summarizes platform health for the admin dashboard
type ReportsResponse struct {
	StudentCount      int          `json:"studentCount"`
	FacultyCount      int          `json:"facultyCount"`
	AverageAttendance float64      `json:"averageAttendance"`
	TopStudents       []TopStudent `json:"topStudents"`
}

// TopStudent is one row of the XP leaderboard
type TopStudent struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	XP   int    `json:"xp"`
}
