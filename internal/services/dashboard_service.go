package services

import (
	"fmt"

	"github.com/sdiallo/projecthub-api/internal/models"
	"github.com/sdiallo/projecthub-api/internal/repository"
)

// DashboardService is a read-only rollup over the other registries. It never
// mutates anything.
type DashboardService struct {
	userRepo         repository.UserRepository
	projectRepo      repository.ProjectRepository
	projectTaskRepo  repository.ProjectTaskRepository
	personalTaskRepo repository.PersonalTaskRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	userRepo repository.UserRepository,
	projectRepo repository.ProjectRepository,
	projectTaskRepo repository.ProjectTaskRepository,
	personalTaskRepo repository.PersonalTaskRepository,
) *DashboardService {
	return &DashboardService{
		userRepo:         userRepo,
		projectRepo:      projectRepo,
		projectTaskRepo:  projectTaskRepo,
		personalTaskRepo: personalTaskRepo,
	}
}

// Summary bundles the dashboard page data.
type Summary struct {
	TotalUsers    int64
	TotalProjects int64
	TotalTasks    int64
	MyTotalTasks  int64
	Projects      []models.Project
	Tasks         []models.ProjectTask
}

// GetSummary aggregates counts, projects with their tasks and members, and
// the project task list. With mineOnly the task list is restricted to tasks
// assigned to the actor.
func (s *DashboardService) GetSummary(actor models.User, mineOnly bool) (*Summary, error) {
	totalUsers, err := s.userRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	totalProjects, err := s.projectRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}

	totalTasks, err := s.personalTaskRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	myTasks, err := s.personalTaskRepo.CountByOwner(actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count own tasks: %w", err)
	}

	projects, err := s.projectRepo.ListAll("Tasks", "Members")
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	var tasks []models.ProjectTask
	if mineOnly {
		tasks, err = s.projectTaskRepo.ListByAssignee(actor.ID, "Assignee")
	} else {
		tasks, err = s.projectTaskRepo.ListAll("Assignee")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list project tasks: %w", err)
	}

	return &Summary{
		TotalUsers:    totalUsers,
		TotalProjects: totalProjects,
		TotalTasks:    totalTasks,
		MyTotalTasks:  myTasks,
		Projects:      projects,
		Tasks:         tasks,
	}, nil
}
