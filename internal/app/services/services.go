package services

// Services defined in this package:
// - AuthService: sign-in, self-registration and session tokens
// - UserService: profiles, the people directory and admin user management
// - CampusService: buildings, courses, events, jobs and news
// - SettingsService: platform flags and branding
// - ReportService: admin dashboard aggregates
// - ChatService: the campus AI assistant
// - AttendanceService: live attendance sessions
