package repository

import (
	"github.com/sdiallo/projecthub-api/internal/models"
	"gorm.io/gorm"
)

// GormPersonalTaskRepository is a GORM implementation of PersonalTaskRepository
type GormPersonalTaskRepository struct {
	db *gorm.DB
}

// NewPersonalTaskRepository creates a new PersonalTaskRepository
func NewPersonalTaskRepository(db *gorm.DB) PersonalTaskRepository {
	return &GormPersonalTaskRepository{db: db}
}

// Create creates a new personal task
func (r *GormPersonalTaskRepository) Create(task *models.PersonalTask) error {
	return r.db.Create(task).Error
}

// FindByID finds a personal task by ID
func (r *GormPersonalTaskRepository) FindByID(id uint64) (*models.PersonalTask, error) {
	var task models.PersonalTask
	if err := r.db.First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Update updates a personal task
func (r *GormPersonalTaskRepository) Update(task *models.PersonalTask) error {
	return r.db.Save(task).Error
}

// Delete soft deletes a personal task
func (r *GormPersonalTaskRepository) Delete(id uint64) error {
	return r.db.Delete(&models.PersonalTask{}, id).Error
}

// ListByOwner lists a user's personal tasks, newest first
func (r *GormPersonalTaskRepository) ListByOwner(userID uint64) ([]models.PersonalTask, error) {
	var tasks []models.PersonalTask
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Count counts all personal tasks
func (r *GormPersonalTaskRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.PersonalTask{}).Count(&count).Error
	return count, err
}

// CountByOwner counts a user's personal tasks
func (r *GormPersonalTaskRepository) CountByOwner(userID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.PersonalTask{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
