package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sdiallo/projecthub-api/internal/dto"
	apierrors "github.com/sdiallo/projecthub-api/internal/errors"
	"github.com/sdiallo/projecthub-api/internal/services"
)

// PersonalTaskHandler coordinates personal task handlers.
type PersonalTaskHandler struct {
	taskService *services.PersonalTaskService
}

// NewPersonalTaskHandler creates a new PersonalTaskHandler.
func NewPersonalTaskHandler(taskService *services.PersonalTaskService) *PersonalTaskHandler {
	return &PersonalTaskHandler{
		taskService: taskService,
	}
}

type personalTaskRequest struct {
	Name        string `json:"nom_task" binding:"required,max=255"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	IsCompleted bool   `json:"is_completed"`
	IsImportant bool   `json:"is_important"`
}

func (r personalTaskRequest) toInput(c *gin.Context) (services.PersonalTaskInput, bool) {
	input := services.PersonalTaskInput{
		Name:        r.Name,
		Description: r.Description,
		IsCompleted: r.IsCompleted,
		IsImportant: r.IsImportant,
	}

	if r.DueDate != "" {
		dueDate, err := parseDate(r.DueDate)
		if err != nil {
			apierrors.BadRequest(c, "Invalid due date")
			return input, false
		}
		input.DueDate = &dueDate
	}

	return input, true
}

// ListTasks returns the actor's personal tasks.
func (h *PersonalTaskHandler) ListTasks(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	tasks, err := h.taskService.List(actor)
	if err != nil {
		respondPersonalTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": dto.ToPersonalTaskDTOs(tasks),
	})
}

// CreateTask stores a new personal task owned by the actor.
func (h *PersonalTaskHandler) CreateTask(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req personalTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input, ok := req.toInput(c)
	if !ok {
		return
	}

	task, err := h.taskService.Create(actor, input)
	if err != nil {
		respondPersonalTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPersonalTaskDTO(*task))
}

// UpdateTask rewrites one of the actor's personal tasks.
func (h *PersonalTaskHandler) UpdateTask(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req personalTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input, ok := req.toInput(c)
	if !ok {
		return
	}

	task, err := h.taskService.Update(actor, id, input)
	if err != nil {
		respondPersonalTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPersonalTaskDTO(*task))
}

// DeleteTask removes one of the actor's personal tasks.
func (h *PersonalTaskHandler) DeleteTask(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.taskService.Delete(actor, id); err != nil {
		respondPersonalTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Tâche supprimée avec succès.",
	})
}

func respondPersonalTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrForbidden):
		apierrors.Forbidden(c, "Action non autorisée.")
	case errors.Is(err, services.ErrPersonalTaskNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrPersonalTaskNameRequired):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
