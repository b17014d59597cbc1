package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReportsAggregates(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewReportService(repos.UserRepository, zerolog.Nop())

	students := []struct {
		id         string
		xp         int
		attendance int
	}{
		{"STU-001", 1200, 92},
		{"STU-002", 800, 75},
		{"STU-003", 1500, 60},
		{"STU-004", 400, 85},
	}
	for _, st := range students {
		u := testStudent(st.id, st.id, st.id+"@unistone.edu")
		u.XP = st.xp
		u.Attendance = st.attendance
		insertUser(t, repos, u)
	}
	insertUser(t, repos, testFaculty("FAC-001", "Dr. Alan Turing", "alan@unistone.edu"))

	reports, err := svc.GetReports(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, reports.StudentCount)
	assert.Equal(t, 1, reports.FacultyCount)
	assert.InDelta(t, 78.0, reports.AverageAttendance, 0.001)

	// Leaderboard is capped at three, highest XP first
	require.Len(t, reports.TopStudents, 3)
	assert.Equal(t, "STU-003", reports.TopStudents[0].ID)
	assert.Equal(t, "STU-001", reports.TopStudents[1].ID)
	assert.Equal(t, "STU-002", reports.TopStudents[2].ID)
}

func TestGetReportsEmptyCampus(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewReportService(repos.UserRepository, zerolog.Nop())

	reports, err := svc.GetReports(context.Background())
	require.NoError(t, err)

	assert.Zero(t, reports.StudentCount)
	assert.Zero(t, reports.AverageAttendance)
	assert.Empty(t, reports.TopStudents)
}
