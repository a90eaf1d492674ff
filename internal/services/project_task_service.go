package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/sdiallo/projecthub-api/internal/models"
	"github.com/sdiallo/projecthub-api/internal/repository"
	"github.com/sdiallo/projecthub-api/internal/utils"
)

var (
	ErrTaskNotFound          = errors.New("tâche non trouvée : la tâche spécifiée n'existe pas")
	ErrTaskProjectGone       = errors.New("projet associé non trouvé")
	ErrTaskDescriptionEmpty  = errors.New("la description de la tâche est obligatoire")
	ErrTaskDueDatePast       = errors.New("la date d'échéance doit être aujourd'hui ou ultérieure")
	ErrInvalidTaskStatus     = errors.New("statut de tâche invalide")
	ErrTaskTransitionBlocked = errors.New("vous ne pouvez faire avancer que vos propres tâches, sans retour en arrière")
	ErrTaskInProgress        = errors.New("impossible de supprimer : la tâche est en cours. Veuillez la terminer ou la remettre en attente avant suppression")
)

// ProjectTaskService owns project task business logic.
type ProjectTaskService struct {
	taskRepo    repository.ProjectTaskRepository
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

// NewProjectTaskService creates a new ProjectTaskService.
func NewProjectTaskService(taskRepo repository.ProjectTaskRepository, projectRepo repository.ProjectRepository, userRepo repository.UserRepository) *ProjectTaskService {
	return &ProjectTaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// CreateTaskInput represents input for creating a project task.
type CreateTaskInput struct {
	Description string
	DueDate     time.Time
	AssigneeID  uint64
	ProjectID   uint64
}

// Create stores a new task in en_attente. The due date may be today but not
// earlier; assignee and project must exist.
func (s *ProjectTaskService) Create(actor models.User, input CreateTaskInput) (*models.ProjectTask, error) {
	if strings.TrimSpace(input.Description) == "" {
		return nil, ErrTaskDescriptionEmpty
	}

	if utils.DateOnly(input.DueDate).Before(utils.DateOnly(time.Now())) {
		return nil, ErrTaskDueDatePast
	}

	if _, err := s.userRepo.FindByID(input.AssigneeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find assignee: %w", err)
	}

	if _, err := s.projectRepo.FindByID(input.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	task := &models.ProjectTask{
		Description: input.Description,
		DueDate:     input.DueDate,
		Status:      models.TaskStatusPending,
		UserID:      input.AssigneeID,
		ProjectID:   input.ProjectID,
		CreatedBy:   actor.ID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// UpdateStatus moves a task to a new status. Admins transition freely within
// the enum; a standard user must be the assignee and may only move forward.
func (s *ProjectTaskService) UpdateStatus(actor models.User, taskID uint64, status models.TaskStatus) (*models.ProjectTask, error) {
	if !models.ValidTaskStatus(status) {
		return nil, ErrInvalidTaskStatus
	}

	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if _, err := s.projectRepo.FindByID(task.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskProjectGone
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	admin := actor.IsAdmin()
	if !admin && task.UserID != actor.ID {
		return nil, ErrForbidden
	}
	if !models.CanTransitionTaskStatus(task.Status, status, admin) {
		return nil, ErrTaskTransitionBlocked
	}

	task.Status = status
	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}

	return task, nil
}

// Delete removes a task. Admin only; a task in en_cours is protected and its
// row stays untouched.
func (s *ProjectTaskService) Delete(actor models.User, taskID uint64) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}

	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	if !task.Deletable() {
		return ErrTaskInProgress
	}

	if err := s.taskRepo.Delete(taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}
