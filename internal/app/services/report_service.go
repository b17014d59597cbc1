package services

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/unistone/campus/internal/app/models"
	"github.com/unistone/campus/internal/app/models/dto"
	"github.com/unistone/campus/internal/app/repositories"
)

// topStudentCount bounds the XP leaderboard on the admin dashboard.
const topStudentCount = 3

// ReportService defines the interface for admin dashboard aggregates
type ReportService interface {
	GetReports(ctx context.Context) (*dto.ReportsResponse, error)
}

// reportServiceImpl implements ReportService
type reportServiceImpl struct {
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewReportService creates a new ReportService
func NewReportService(userRepo repositories.IUserRepository, logger zerolog.Logger) ReportService {
	return &reportServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetReports computes the admin dashboard numbers: headcounts, the average
// student attendance and the XP leaderboard.
func (s *reportServiceImpl) GetReports(ctx context.Context) (*dto.ReportsResponse, error) {
	students, err := s.userRepo.ListByRole(models.RoleStudent)
	if err != nil {
		return nil, err
	}
	faculty, err := s.userRepo.ListByRole(models.RoleFaculty)
	if err != nil {
		return nil, err
	}

	var avgAttendance float64
	if len(students) > 0 {
		total := 0
		for _, st := range students {
			total += st.Attendance
		}
		avgAttendance = float64(total) / float64(len(students))
	}

	ranked := make([]models.User, len(students))
	copy(ranked, students)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].XP > ranked[j].XP
	})
	if len(ranked) > topStudentCount {
		ranked = ranked[:topStudentCount]
	}

	top := make([]dto.TopStudent, 0, len(ranked))
	for _, st := range ranked {
		top = append(top, dto.TopStudent{ID: st.ID, Name: st.Name, XP: st.XP})
	}

	return &dto.ReportsResponse{
		StudentCount:      len(students),
		FacultyCount:      len(faculty),
		AverageAttendance: avgAttendance,
		TopStudents:       top,
	}, nil
}
