package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sdiallo/projecthub-api/internal/dto"
	apierrors "github.com/sdiallo/projecthub-api/internal/errors"
	"github.com/sdiallo/projecthub-api/internal/models"
	"github.com/sdiallo/projecthub-api/internal/repository"
	"github.com/sdiallo/projecthub-api/internal/services"
	"github.com/sdiallo/projecthub-api/internal/utils"
)

// UserHandler coordinates the admin user directory handlers.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers returns users, optionally filtered by role and creation range.
func (h *UserHandler) ListUsers(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	filter := repository.UserFilter{}
	if roleStr := c.Query("type"); roleStr != "" {
		role := models.UserRole(roleStr)
		filter.Role = &role
	}
	startStr, endStr := c.Query("start_date"), c.Query("end_date")
	if startStr != "" && endStr != "" {
		start, err := parseDate(startStr)
		if err != nil {
			apierrors.BadRequest(c, "Invalid start_date")
			return
		}
		end, err := parseDate(endStr)
		if err != nil {
			apierrors.BadRequest(c, "Invalid end_date")
			return
		}
		filter.StartDate = &start
		filter.EndDate = &end
	}

	params := utils.GetPaginationParams(c)
	users, total, err := h.userService.ListPage(actor, filter, params)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": dto.ToUserDTOs(users),
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// DeleteUser removes a non-admin account.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.userService.Delete(actor, id); err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Utilisateur supprimé avec succès.",
	})
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrForbidden):
		apierrors.Forbidden(c, "")
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrAdminUndeletable):
		apierrors.Forbidden(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
