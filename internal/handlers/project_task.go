package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sdiallo/projecthub-api/internal/dto"
	apierrors "github.com/sdiallo/projecthub-api/internal/errors"
	"github.com/sdiallo/projecthub-api/internal/models"
	"github.com/sdiallo/projecthub-api/internal/services"
)

// ProjectTaskHandler coordinates project task handlers.
type ProjectTaskHandler struct {
	taskService *services.ProjectTaskService
}

// NewProjectTaskHandler creates a new ProjectTaskHandler.
func NewProjectTaskHandler(taskService *services.ProjectTaskService) *ProjectTaskHandler {
	return &ProjectTaskHandler{
		taskService: taskService,
	}
}

// CreateTask stores a new project task.
func (h *ProjectTaskHandler) CreateTask(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	type CreateTaskRequest struct {
		Description string `json:"description" binding:"required,max=2000"`
		DueDate     string `json:"date_echeance" binding:"required"`
		AssigneeID  uint64 `json:"user_id" binding:"required"`
		ProjectID   uint64 `json:"project_id" binding:"required"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		apierrors.BadRequest(c, "Invalid due date")
		return
	}

	task, err := h.taskService.Create(actor, services.CreateTaskInput{
		Description: req.Description,
		DueDate:     dueDate,
		AssigneeID:  req.AssigneeID,
		ProjectID:   req.ProjectID,
	})
	if err != nil {
		respondProjectTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectTaskDTO(*task))
}

// UpdateTaskStatus moves a task to a new status.
func (h *ProjectTaskHandler) UpdateTaskStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	type UpdateStatusRequest struct {
		Status string `json:"status" binding:"required"`
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.UpdateStatus(actor, id, models.TaskStatus(req.Status))
	if err != nil {
		respondProjectTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectTaskDTO(*task))
}

// DeleteTask removes a task if its status allows it.
func (h *ProjectTaskHandler) DeleteTask(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.taskService.Delete(actor, id); err != nil {
		respondProjectTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Tâche supprimée avec succès.",
	})
}

func respondProjectTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrForbidden),
		errors.Is(err, services.ErrTaskTransitionBlocked):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrTaskProjectGone),
		errors.Is(err, services.ErrProjectNotFound),
		errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTaskDescriptionEmpty),
		errors.Is(err, services.ErrTaskDueDatePast),
		errors.Is(err, services.ErrInvalidTaskStatus):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrTaskInProgress):
		apierrors.PreconditionFailed(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
