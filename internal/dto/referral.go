package dto

import (
	"time"

	"github.com/sdiallo/projecthub-api/internal/models"
)

// ReferralDTO represents a referral in API responses, annotated with its
// expiration state for display.
type ReferralDTO struct {
	ID             uint64    `json:"id"`
	Code           string    `json:"nom_ref"`
	ExpirationDate time.Time `json:"date_expiration"`
	IsExpired      bool      `json:"is_expired"`
	CreatedAt      time.Time `json:"created_at"`
}

// ToReferralDTO converts a Referral model to ReferralDTO
func ToReferralDTO(referral models.Referral, today time.Time) ReferralDTO {
	return ReferralDTO{
		ID:             referral.ID,
		Code:           referral.Code,
		ExpirationDate: referral.ExpirationDate,
		IsExpired:      referral.IsExpired(today),
		CreatedAt:      referral.CreatedAt,
	}
}

// ToReferralDTOs converts a slice of referrals
func ToReferralDTOs(referrals []models.Referral, today time.Time) []ReferralDTO {
	dtos := make([]ReferralDTO, len(referrals))
	for i, referral := range referrals {
		dtos[i] = ToReferralDTO(referral, today)
	}
	return dtos
}
