package repository

import (
	"github.com/sdiallo/projecthub-api/internal/models"
	"gorm.io/gorm"
)

// GormProjectTaskRepository is a GORM implementation of ProjectTaskRepository
type GormProjectTaskRepository struct {
	db *gorm.DB
}

// NewProjectTaskRepository creates a new ProjectTaskRepository
func NewProjectTaskRepository(db *gorm.DB) ProjectTaskRepository {
	return &GormProjectTaskRepository{db: db}
}

// Create creates a new project task
func (r *GormProjectTaskRepository) Create(task *models.ProjectTask) error {
	return r.db.Create(task).Error
}

// FindByID finds a project task by ID with optional preloading
func (r *GormProjectTaskRepository) FindByID(id uint64, preload ...string) (*models.ProjectTask, error) {
	var task models.ProjectTask
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&task, id).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// Update updates a project task
func (r *GormProjectTaskRepository) Update(task *models.ProjectTask) error {
	return r.db.Save(task).Error
}

// Delete soft deletes a project task
func (r *GormProjectTaskRepository) Delete(id uint64) error {
	return r.db.Delete(&models.ProjectTask{}, id).Error
}

// ListAll lists all project tasks, newest first
func (r *GormProjectTaskRepository) ListAll(preload ...string) ([]models.ProjectTask, error) {
	query := r.db.Order("created_at DESC")
	for _, p := range preload {
		query = query.Preload(p)
	}

	var tasks []models.ProjectTask
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListByAssignee lists tasks assigned to a user, newest first
func (r *GormProjectTaskRepository) ListByAssignee(userID uint64, preload ...string) ([]models.ProjectTask, error) {
	query := r.db.Where("user_id = ?", userID).Order("created_at DESC")
	for _, p := range preload {
		query = query.Preload(p)
	}

	var tasks []models.ProjectTask
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}
