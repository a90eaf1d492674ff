package dto

import (
	"time"

	"github.com/sdiallo/projecthub-api/internal/services"
)

// DashboardDTO represents the dashboard rollup in API responses
type DashboardDTO struct {
	TotalUsers    int64            `json:"total_users"`
	TotalProjects int64            `json:"total_projects"`
	TotalTasks    int64            `json:"total_tasks"`
	MyTotalTasks  int64            `json:"my_total_tasks"`
	Projects      []ProjectDTO     `json:"projects"`
	Tasks         []ProjectTaskDTO `json:"tasks"`
}

// ToDashboardDTO converts a dashboard summary, deriving each project's
// time_left relative to now.
func ToDashboardDTO(summary services.Summary, now time.Time) DashboardDTO {
	return DashboardDTO{
		TotalUsers:    summary.TotalUsers,
		TotalProjects: summary.TotalProjects,
		TotalTasks:    summary.TotalTasks,
		MyTotalTasks:  summary.MyTotalTasks,
		Projects:      ToProjectDTOs(summary.Projects, now),
		Tasks:         ToProjectTaskDTOs(summary.Tasks),
	}
}
