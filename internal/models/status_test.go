package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValidProjectStatus(t *testing.T) {
	for _, s := range []ProjectStatus{ProjectStatusPending, ProjectStatusOngoing, ProjectStatusDone, ProjectStatusCancelled} {
		require.True(t, ValidProjectStatus(s))
	}
	require.False(t, ValidProjectStatus("en pause"))
	require.False(t, ValidProjectStatus(""))
}

func TestCanTransitionProjectStatusIsPermissiveWithinEnum(t *testing.T) {
	all := []ProjectStatus{ProjectStatusPending, ProjectStatusOngoing, ProjectStatusDone, ProjectStatusCancelled}
	for _, from := range all {
		for _, to := range all {
			require.True(t, CanTransitionProjectStatus(from, to))
		}
	}
	require.False(t, CanTransitionProjectStatus(ProjectStatusOngoing, "archivé"))
}

func TestProjectDeletable(t *testing.T) {
	tests := []struct {
		status ProjectStatus
		want   bool
	}{
		{ProjectStatusPending, false},
		{ProjectStatusOngoing, false},
		{ProjectStatusDone, true},
		{ProjectStatusCancelled, true},
	}
	for _, tt := range tests {
		p := Project{Status: tt.status}
		require.Equal(t, tt.want, p.Deletable(), "status %s", tt.status)
	}
}

func TestCanTransitionTaskStatus(t *testing.T) {
	// Admins move freely within the enum
	require.True(t, CanTransitionTaskStatus(TaskStatusDone, TaskStatusPending, true))
	require.False(t, CanTransitionTaskStatus(TaskStatusPending, "suspendu", true))

	// Standard users only move forward
	require.True(t, CanTransitionTaskStatus(TaskStatusPending, TaskStatusOngoing, false))
	require.True(t, CanTransitionTaskStatus(TaskStatusOngoing, TaskStatusDone, false))
	require.True(t, CanTransitionTaskStatus(TaskStatusOngoing, TaskStatusOngoing, false))
	require.False(t, CanTransitionTaskStatus(TaskStatusOngoing, TaskStatusPending, false))
	require.False(t, CanTransitionTaskStatus(TaskStatusDone, TaskStatusOngoing, false))
}

func TestProjectTaskDeletable(t *testing.T) {
	require.True(t, (&ProjectTask{Status: TaskStatusPending}).Deletable())
	require.False(t, (&ProjectTask{Status: TaskStatusOngoing}).Deletable())
	require.True(t, (&ProjectTask{Status: TaskStatusDone}).Deletable())
}

func TestReferralIsExpired(t *testing.T) {
	exp := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	referral := Referral{ExpirationDate: exp}

	// Expiration day itself is still valid
	require.False(t, referral.IsExpired(time.Date(2025, 1, 1, 23, 59, 59, 0, time.UTC)))
	require.False(t, referral.IsExpired(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)))
	require.True(t, referral.IsExpired(time.Date(2025, 1, 2, 0, 0, 1, 0, time.UTC)))
}

func TestUserIsAdmin(t *testing.T) {
	require.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	require.False(t, (&User{Role: RoleStandard}).IsAdmin())
	require.False(t, (&User{Role: "superuser"}).IsAdmin())
}
