package dto

import (
	"time"

	"github.com/sdiallo/projecthub-api/internal/models"
)

// ProjectTaskDTO represents a project task in API responses
type ProjectTaskDTO struct {
	ID          uint64            `json:"id"`
	Description string            `json:"description"`
	Status      models.TaskStatus `json:"status"`
	DueDate     time.Time         `json:"due_date"`
	ProjectID   uint64            `json:"project_id"`
	CreatedBy   uint64            `json:"created_by"`
	AssigneeID  uint64            `json:"user_id"`
	Assignee    *UserDTO          `json:"user,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// PersonalTaskDTO represents a personal task in API responses
type PersonalTaskDTO struct {
	ID          uint64     `json:"id"`
	Name        string     `json:"nom_task"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	IsCompleted bool       `json:"is_completed"`
	IsImportant bool       `json:"is_important"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ToProjectTaskDTO converts a ProjectTask model to ProjectTaskDTO
func ToProjectTaskDTO(task models.ProjectTask) ProjectTaskDTO {
	dto := ProjectTaskDTO{
		ID:          task.ID,
		Description: task.Description,
		Status:      task.Status,
		DueDate:     task.DueDate,
		ProjectID:   task.ProjectID,
		CreatedBy:   task.CreatedBy,
		AssigneeID:  task.UserID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}

	// Include assignee if preloaded
	if task.Assignee.ID != 0 {
		assignee := ToUserDTO(task.Assignee)
		dto.Assignee = &assignee
	}

	return dto
}

// ToProjectTaskDTOs converts a slice of project tasks
func ToProjectTaskDTOs(tasks []models.ProjectTask) []ProjectTaskDTO {
	dtos := make([]ProjectTaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToProjectTaskDTO(task)
	}
	return dtos
}

// ToPersonalTaskDTO converts a PersonalTask model to PersonalTaskDTO
func ToPersonalTaskDTO(task models.PersonalTask) PersonalTaskDTO {
	return PersonalTaskDTO{
		ID:          task.ID,
		Name:        task.Name,
		Description: task.Description,
		DueDate:     task.DueDate,
		IsCompleted: task.IsCompleted,
		IsImportant: task.IsImportant,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// ToPersonalTaskDTOs converts a slice of personal tasks
func ToPersonalTaskDTOs(tasks []models.PersonalTask) []PersonalTaskDTO {
	dtos := make([]PersonalTaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToPersonalTaskDTO(task)
	}
	return dtos
}
