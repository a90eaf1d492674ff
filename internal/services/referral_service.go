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
	ErrReferralNotFound     = errors.New("le code de parrainage que vous avez saisi est invalide")
	ErrReferralExpired      = errors.New("le code de parrainage a expiré")
	ErrReferralCodeTaken    = errors.New("ce code de parrainage existe déjà")
	ErrReferralDateInPast   = errors.New("la date d'expiration doit être aujourd'hui ou ultérieure")
	ErrReferralCodeRequired = errors.New("referral code generation failed")
)

// ReferralService handles invitation code business logic.
type ReferralService struct {
	referralRepo repository.ReferralRepository
}

// NewReferralService creates a new ReferralService.
func NewReferralService(referralRepo repository.ReferralRepository) *ReferralService {
	return &ReferralService{
		referralRepo: referralRepo,
	}
}

// Validate checks a referral code for existence and expiration at date
// granularity. A code expiring today is still valid.
func (s *ReferralService) Validate(code string, today time.Time) (*models.Referral, error) {
	referral, err := s.referralRepo.FindByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReferralNotFound
		}
		return nil, fmt.Errorf("failed to find referral: %w", err)
	}

	if referral.IsExpired(today) {
		return nil, ErrReferralExpired
	}

	return referral, nil
}

// CreateReferralInput represents parameters to create a new referral.
type CreateReferralInput struct {
	Code           string
	ExpirationDate time.Time
}

// Create stores a new referral. Admin only. An empty code gets a generated
// one. The expiration date may equal today but never precede it.
func (s *ReferralService) Create(actor models.User, input CreateReferralInput) (*models.Referral, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	code := strings.TrimSpace(input.Code)
	if code == "" {
		generated, err := utils.GenerateReferralCode()
		if err != nil {
			return nil, ErrReferralCodeRequired
		}
		code = generated
	}

	today := time.Now()
	tmp := models.Referral{ExpirationDate: input.ExpirationDate}
	if tmp.IsExpired(today) {
		return nil, ErrReferralDateInPast
	}

	taken, err := s.referralRepo.CodeExists(code)
	if err != nil {
		return nil, fmt.Errorf("failed to check referral code: %w", err)
	}
	if taken {
		return nil, ErrReferralCodeTaken
	}

	referral := &models.Referral{
		Code:           code,
		ExpirationDate: input.ExpirationDate,
	}

	if err := s.referralRepo.Create(referral); err != nil {
		return nil, fmt.Errorf("failed to create referral: %w", err)
	}

	return referral, nil
}

// List returns every referral, newest first. Admin only.
func (s *ReferralService) List(actor models.User) ([]models.Referral, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	referrals, err := s.referralRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list referrals: %w", err)
	}
	return referrals, nil
}

// Delete removes a referral. Admin only.
func (s *ReferralService) Delete(actor models.User, id uint64) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}

	if _, err := s.referralRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReferralNotFound
		}
		return fmt.Errorf("failed to find referral: %w", err)
	}

	if err := s.referralRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete referral: %w", err)
	}

	return nil
}
