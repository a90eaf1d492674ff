package repository

import (
	"errors"

	"github.com/sdiallo/projecthub-api/internal/models"
	"gorm.io/gorm"
)

// GormReferralRepository is a GORM implementation of ReferralRepository
type GormReferralRepository struct {
	db *gorm.DB
}

// NewReferralRepository creates a new ReferralRepository
func NewReferralRepository(db *gorm.DB) ReferralRepository {
	return &GormReferralRepository{db: db}
}

// Create creates a new referral
func (r *GormReferralRepository) Create(referral *models.Referral) error {
	return r.db.Create(referral).Error
}

// FindByID finds a referral by ID
func (r *GormReferralRepository) FindByID(id uint64) (*models.Referral, error) {
	var referral models.Referral
	if err := r.db.First(&referral, id).Error; err != nil {
		return nil, err
	}
	return &referral, nil
}

// FindByCode finds a referral by its code
func (r *GormReferralRepository) FindByCode(code string) (*models.Referral, error) {
	var referral models.Referral
	if err := r.db.Where("nom_ref = ?", code).First(&referral).Error; err != nil {
		return nil, err
	}
	return &referral, nil
}

// CodeExists reports whether a referral code is already taken
func (r *GormReferralRepository) CodeExists(code string) (bool, error) {
	_, err := r.FindByCode(code)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

// List retrieves all referrals, newest first
func (r *GormReferralRepository) List() ([]models.Referral, error) {
	var referrals []models.Referral
	if err := r.db.Order("created_at DESC").Find(&referrals).Error; err != nil {
		return nil, err
	}
	return referrals, nil
}

// Delete soft deletes a referral
func (r *GormReferralRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Referral{}, id).Error
}
