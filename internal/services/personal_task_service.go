package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/sdiallo/projecthub-api/internal/models"
	"github.com/sdiallo/projecthub-api/internal/repository"
)

var (
	ErrPersonalTaskNotFound     = errors.New("tâche non trouvée")
	ErrPersonalTaskNameRequired = errors.New("le nom de la tâche est obligatoire")
)

// PersonalTaskService owns the per-user task list. Every mutation checks
// ownership; there is no cross-user visibility.
type PersonalTaskService struct {
	taskRepo repository.PersonalTaskRepository
}

// NewPersonalTaskService creates a new PersonalTaskService.
func NewPersonalTaskService(taskRepo repository.PersonalTaskRepository) *PersonalTaskService {
	return &PersonalTaskService{
		taskRepo: taskRepo,
	}
}

// PersonalTaskInput carries the writable fields of a personal task.
type PersonalTaskInput struct {
	Name        string
	Description string
	DueDate     *time.Time
	IsCompleted bool
	IsImportant bool
}

// Create stores a new personal task owned by the actor.
func (s *PersonalTaskService) Create(actor models.User, input PersonalTaskInput) (*models.PersonalTask, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrPersonalTaskNameRequired
	}

	task := &models.PersonalTask{
		Name:        input.Name,
		Description: input.Description,
		DueDate:     input.DueDate,
		IsCompleted: input.IsCompleted,
		IsImportant: input.IsImportant,
		UserID:      actor.ID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create personal task: %w", err)
	}

	return task, nil
}

// Update rewrites a personal task. Only the owner may update it.
func (s *PersonalTaskService) Update(actor models.User, taskID uint64, input PersonalTaskInput) (*models.PersonalTask, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrPersonalTaskNameRequired
	}

	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonalTaskNotFound
		}
		return nil, fmt.Errorf("failed to find personal task: %w", err)
	}

	if task.UserID != actor.ID {
		return nil, ErrForbidden
	}

	task.Name = input.Name
	task.Description = input.Description
	task.DueDate = input.DueDate
	task.IsCompleted = input.IsCompleted
	task.IsImportant = input.IsImportant

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update personal task: %w", err)
	}

	return task, nil
}

// Delete removes a personal task. Only the owner may delete it.
func (s *PersonalTaskService) Delete(actor models.User, taskID uint64) error {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPersonalTaskNotFound
		}
		return fmt.Errorf("failed to find personal task: %w", err)
	}

	if task.UserID != actor.ID {
		return ErrForbidden
	}

	if err := s.taskRepo.Delete(taskID); err != nil {
		return fmt.Errorf("failed to delete personal task: %w", err)
	}

	return nil
}

// List returns the actor's personal tasks, newest first.
func (s *PersonalTaskService) List(actor models.User) ([]models.PersonalTask, error) {
	tasks, err := s.taskRepo.ListByOwner(actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list personal tasks: %w", err)
	}
	return tasks, nil
}
