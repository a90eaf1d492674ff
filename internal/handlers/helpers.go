package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sdiallo/projecthub-api/internal/constants"
	apierrors "github.com/sdiallo/projecthub-api/internal/errors"
	"github.com/sdiallo/projecthub-api/internal/middleware"
	"github.com/sdiallo/projecthub-api/internal/models"
)

// requireActor pulls the authenticated user out of the context, responding
// 401 when absent.
func requireActor(c *gin.Context) (models.User, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return models.User{}, false
	}
	return actor, true
}

// parseIDParam parses the :id URL parameter, responding 400 when malformed.
func parseIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid ID")
		return 0, false
	}
	return id, true
}

// parseDate parses a YYYY-MM-DD value the way the web forms submit dates.
func parseDate(value string) (time.Time, error) {
	return time.Parse(constants.DateLayout, value)
}
