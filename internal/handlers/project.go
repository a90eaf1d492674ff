package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sdiallo/projecthub-api/internal/dto"
	apierrors "github.com/sdiallo/projecthub-api/internal/errors"
	"github.com/sdiallo/projecthub-api/internal/models"
	"github.com/sdiallo/projecthub-api/internal/services"
)

// ProjectHandler coordinates project and membership handlers.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// ListMyProjects returns the actor's project assignments.
func (h *ProjectHandler) ListMyProjects(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	memberships, err := h.projectService.ListForUser(actor.ID)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assignments": dto.ToMembershipDTOs(memberships, time.Now()),
	})
}

// AdminListProjects returns the admin page data: the actor's projects with
// time_left, plus all standard users annotated with is_linked.
func (h *ProjectHandler) AdminListProjects(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	listing, err := h.projectService.ListAdmin(actor)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	now := time.Now()
	c.JSON(http.StatusOK, gin.H{
		"projects": dto.ToProjectDTOs(listing.Projects, now),
		"users":    dto.ToUserWithLinkDTOs(listing.Users, listing.LinkedIDs),
	})
}

// CreateProject stores a new project.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	type CreateProjectRequest struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"desc_prj" binding:"required"`
		DueDate     string `json:"due_date" binding:"required"`
		Status      string `json:"status"`
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		apierrors.BadRequest(c, "Invalid due date")
		return
	}

	project, err := h.projectService.Create(actor, services.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		DueDate:     dueDate,
		Status:      models.ProjectStatus(req.Status),
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectDTO(*project, time.Now()))
}

// GetProject returns a project with its members and the users eligible to
// join it.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	if _, ok := requireActor(c); !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	project, candidates, err := h.projectService.GetWithCandidates(id)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProjectDetailDTO{
		Project:    dto.ToProjectDTO(*project, time.Now()),
		Candidates: dto.ToUserDTOs(candidates),
	})
}

// UpdateProject updates a project's name, description and due date.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	type UpdateProjectRequest struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"desc_prj" binding:"required"`
		DueDate     string `json:"due_date" binding:"required"`
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		apierrors.BadRequest(c, "Invalid due date")
		return
	}

	project, err := h.projectService.UpdateDetails(actor, id, services.UpdateDetailsInput{
		Name:        req.Name,
		Description: req.Description,
		DueDate:     dueDate,
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project, time.Now()))
}

// UpdateProjectStatus moves a project to a new status.
func (h *ProjectHandler) UpdateProjectStatus(c *gin.Context) {
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

	project, err := h.projectService.UpdateStatus(actor, id, models.ProjectStatus(req.Status))
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project, time.Now()))
}

// DeleteProject removes a project if its status allows it.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.projectService.Delete(actor, id); err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Projet supprimé : le projet a été définitivement supprimé du système.",
	})
}

// ToggleMember flips a user's membership in a project.
func (h *ProjectHandler) ToggleMember(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	type ToggleMemberRequest struct {
		UserID uint64 `json:"user_id" binding:"required"`
	}

	var req ToggleMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	added, err := h.projectService.ToggleMember(actor, id, req.UserID)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	message := "Utilisateur retiré du projet avec succès"
	if added {
		message = "Utilisateur ajouté au projet avec succès"
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"added":   added,
	})
}

func respondProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrForbidden):
		apierrors.Forbidden(c, "")
	case errors.Is(err, services.ErrProjectNotFound),
		errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrProjectNameTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrProjectNameRequired),
		errors.Is(err, services.ErrDueDateNotFuture),
		errors.Is(err, services.ErrInvalidProjectStatus):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrProjectNotDeletable):
		apierrors.PreconditionFailed(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
