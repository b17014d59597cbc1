package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unistone/campus/internal/pkg/apperrors"
	"github.com/unistone/campus/internal/pkg/notify"
)

func newAttendanceService(t *testing.T) (AttendanceService, func() int) {
	t.Helper()

	repos := newTestRepos(t)
	student := testStudent("STU-001", "Sarah Connor", "sarah@unistone.edu")
	insertUser(t, repos, student)

	hub := notify.NewHub(zerolog.Nop())
	go hub.Run()

	svc := NewAttendanceService(repos.UserRepository, hub, zerolog.Nop())

	xp := func() int {
		u, err := repos.UserRepository.FindByID("STU-001")
		require.NoError(t, err)
		return u.XP
	}
	return svc, xp
}

func TestCurrentSessionWhenNoneActive(t *testing.T) {
	svc, _ := newAttendanceService(t)

	_, err := svc.CurrentSession(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrNoActiveSession)
}

func TestStartSessionReplacesActiveOne(t *testing.T) {
	svc, _ := newAttendanceService(t)

	first, err := svc.StartSession(context.Background(), "FAC-001", "c1")
	require.NoError(t, err)

	second, err := svc.StartSession(context.Background(), "FAC-002", "c2")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	current, err := svc.CurrentSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, second.ID, current.ID)
	assert.Equal(t, "c2", current.CourseID)
	assert.Empty(t, current.Present)
}

func TestMarkPresentAwardsXPOnce(t *testing.T) {
	svc, xp := newAttendanceService(t)

	session, err := svc.StartSession(context.Background(), "FAC-001", "c1")
	require.NoError(t, err)

	updated, err := svc.MarkPresent(context.Background(), session.ID, "STU-001")
	require.NoError(t, err)
	assert.Equal(t, []string{"STU-001"}, updated.Present)
	assert.Equal(t, 10, xp())

	// Checking in again is a no-op
	updated, err = svc.MarkPresent(context.Background(), session.ID, "STU-001")
	require.NoError(t, err)
	assert.Equal(t, []string{"STU-001"}, updated.Present)
	assert.Equal(t, 10, xp())
}

func TestMarkPresentStaleSession(t *testing.T) {
	svc, _ := newAttendanceService(t)

	stale, err := svc.StartSession(context.Background(), "FAC-001", "c1")
	require.NoError(t, err)

	_, err = svc.StartSession(context.Background(), "FAC-001", "c2")
	require.NoError(t, err)

	_, err = svc.MarkPresent(context.Background(), stale.ID, "STU-001")
	assert.ErrorIs(t, err, apperrors.ErrNoActiveSession)
}

func TestCloseSessionOnlyByOwner(t *testing.T) {
	svc, _ := newAttendanceService(t)

	session, err := svc.StartSession(context.Background(), "FAC-001", "c1")
	require.NoError(t, err)

	_, err = svc.CloseSession(context.Background(), "FAC-002")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	closed, err := svc.CloseSession(context.Background(), "FAC-001")
	require.NoError(t, err)
	assert.Equal(t, session.ID, closed.ID)

	_, err = svc.CurrentSession(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrNoActiveSession)
}
