package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sdiallo/projecthub-api/internal/dto"
	apierrors "github.com/sdiallo/projecthub-api/internal/errors"
	"github.com/sdiallo/projecthub-api/internal/services"
)

// ReferralHandler coordinates invitation code handlers.
type ReferralHandler struct {
	referralService *services.ReferralService
}

// NewReferralHandler creates a new ReferralHandler.
func NewReferralHandler(referralService *services.ReferralService) *ReferralHandler {
	return &ReferralHandler{
		referralService: referralService,
	}
}

// ListReferrals returns all referrals with their expiration state.
func (h *ReferralHandler) ListReferrals(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	referrals, err := h.referralService.List(actor)
	if err != nil {
		respondReferralError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"invitations": dto.ToReferralDTOs(referrals, time.Now()),
	})
}

// CreateReferral stores a new invitation code.
func (h *ReferralHandler) CreateReferral(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	type CreateReferralRequest struct {
		Code           string `json:"nom_ref"`
		ExpirationDate string `json:"date_expiration" binding:"required"`
	}

	var req CreateReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	expiration, err := parseDate(req.ExpirationDate)
	if err != nil {
		apierrors.BadRequest(c, "Invalid expiration date")
		return
	}

	referral, err := h.referralService.Create(actor, services.CreateReferralInput{
		Code:           req.Code,
		ExpirationDate: expiration,
	})
	if err != nil {
		respondReferralError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReferralDTO(*referral, time.Now()))
}

// DeleteReferral removes an invitation code.
func (h *ReferralHandler) DeleteReferral(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.referralService.Delete(actor, id); err != nil {
		respondReferralError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Invitation supprimée avec succès.",
	})
}

func respondReferralError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrForbidden):
		apierrors.Forbidden(c, "")
	case errors.Is(err, services.ErrReferralNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrReferralCodeTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrReferralDateInPast):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
