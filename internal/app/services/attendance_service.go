package services

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/unistone/campus/internal/app/models"
	"github.com/unistone/campus/internal/app/repositories"
	"github.com/unistone/campus/internal/pkg/apperrors"
	"github.com/unistone/campus/internal/pkg/notify"
)

// attendanceXPReward is granted to a student for checking in.
const attendanceXPReward = 10

// AttendanceService defines the interface for live attendance sessions.
// At most one session is active campus-wide at any moment.
type AttendanceService interface {
	StartSession(ctx context.Context, facultyID, courseID string) (*models.AttendanceSession, error)
	CloseSession(ctx context.Context, facultyID string) (*models.AttendanceSession, error)
	CurrentSession(ctx context.Context) (*models.AttendanceSession, error)
	MarkPresent(ctx context.Context, sessionID, studentID string) (*models.AttendanceSession, error)
}

// attendanceServiceImpl implements AttendanceService
type attendanceServiceImpl struct {
	userRepo repositories.IUserRepository
	hub      *notify.Hub
	logger   zerolog.Logger

	mu      sync.Mutex
	current *models.AttendanceSession
}

// NewAttendanceService creates a new AttendanceService
func NewAttendanceService(userRepo repositories.IUserRepository, hub *notify.Hub, logger zerolog.Logger) AttendanceService {
	return &attendanceServiceImpl{
		userRepo: userRepo,
		hub:      hub,
		logger:   logger,
	}
}

// StartSession opens a check-in window and pushes a session_started event
// to all watchers. Starting a new session replaces any active one.
func (s *attendanceServiceImpl) StartSession(ctx context.Context, facultyID, courseID string) (*models.AttendanceSession, error) {
	session := &models.AttendanceSession{
		ID:        newID("ATT"),
		CourseID:  courseID,
		FacultyID: facultyID,
		StartedAt: time.Now(),
		Present:   []string{},
	}

	s.mu.Lock()
	s.current = session
	s.mu.Unlock()

	s.hub.Broadcast(&notify.Event{
		Type:      notify.EventSessionStarted,
		SessionID: session.ID,
		CourseID:  courseID,
		FacultyID: facultyID,
		Timestamp: session.StartedAt,
	})

	s.logger.Info().Str("sessionID", session.ID).Str("courseID", courseID).Msg("Attendance session started")
	return session, nil
}

// CloseSession ends the active session. Only the faculty member who opened
// it may close it.
func (s *attendanceServiceImpl) CloseSession(ctx context.Context, facultyID string) (*models.AttendanceSession, error) {
	s.mu.Lock()
	session := s.current
	if session == nil {
		s.mu.Unlock()
		return nil, apperrors.ErrNoActiveSession
	}
	if session.FacultyID != facultyID {
		s.mu.Unlock()
		return nil, apperrors.NewForbiddenError("Only the session owner can close it")
	}
	s.current = nil
	s.mu.Unlock()

	s.hub.Broadcast(&notify.Event{
		Type:      notify.EventSessionClosed,
		SessionID: session.ID,
		CourseID:  session.CourseID,
		FacultyID: session.FacultyID,
		Timestamp: time.Now(),
	})

	s.logger.Info().Str("sessionID", session.ID).Int("present", len(session.Present)).Msg("Attendance session closed")
	return session, nil
}

// CurrentSession returns the active session, if any
func (s *attendanceServiceImpl) CurrentSession(ctx context.Context) (*models.AttendanceSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, apperrors.ErrNoActiveSession
	}

	snapshot := *s.current
	snapshot.Present = append([]string{}, s.current.Present...)
	return &snapshot, nil
}

// MarkPresent records a student check-in against the active session and
// rewards the student with XP. Checking in twice is a no-op.
func (s *attendanceServiceImpl) MarkPresent(ctx context.Context, sessionID, studentID string) (*models.AttendanceSession, error) {
	s.mu.Lock()
	session := s.current
	if session == nil || session.ID != sessionID {
		s.mu.Unlock()
		return nil, apperrors.ErrNoActiveSession
	}

	already := session.HasMarked(studentID)
	if !already {
		session.Present = append(session.Present, studentID)
	}
	snapshot := *session
	snapshot.Present = append([]string{}, session.Present...)
	s.mu.Unlock()

	if already {
		return &snapshot, nil
	}

	if _, err := s.userRepo.AddXP(studentID, attendanceXPReward); err != nil {
		s.logger.Warn().Err(err).Str("studentID", studentID).Msg("Could not award attendance XP")
	}

	s.hub.Broadcast(&notify.Event{
		Type:      notify.EventStudentPresent,
		SessionID: session.ID,
		CourseID:  session.CourseID,
		StudentID: studentID,
		Timestamp: time.Now(),
	})

	s.logger.Debug().Str("sessionID", sessionID).Str("studentID", studentID).Msg("Student marked present")
	return &snapshot, nil
}
