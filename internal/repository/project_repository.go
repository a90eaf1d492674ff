package repository

import (
	"errors"

	"github.com/sdiallo/projecthub-api/internal/models"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// FindByID finds a project by ID with optional preloading
func (r *GormProjectRepository) FindByID(id uint64, preload ...string) (*models.Project, error) {
	var project models.Project
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&project, id).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// NameExists reports whether a project name is taken, excluding excludeID
func (r *GormProjectRepository) NameExists(name string, excludeID uint64) (bool, error) {
	var count int64
	query := r.db.Model(&models.Project{}).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update updates a project
func (r *GormProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project and all related data in a transaction
func (r *GormProjectRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Delete all tasks of the project
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectTask{}).Error; err != nil {
			return err
		}

		// Delete all memberships
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectMember{}).Error; err != nil {
			return err
		}

		// Delete project
		if err := tx.Delete(&models.Project{}, id).Error; err != nil {
			return err
		}

		return nil
	})
}

// ListByCreator lists projects created by a user, newest first
func (r *GormProjectRepository) ListByCreator(creatorID uint64, preload ...string) ([]models.Project, error) {
	query := r.db.Where("created_by = ?", creatorID).Order("created_at DESC")
	for _, p := range preload {
		query = query.Preload(p)
	}

	var projects []models.Project
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// ListAll lists every project, newest first
func (r *GormProjectRepository) ListAll(preload ...string) ([]models.Project, error) {
	query := r.db.Order("created_at DESC")
	for _, p := range preload {
		query = query.Preload(p)
	}

	var projects []models.Project
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Count counts all projects
func (r *GormProjectRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Count(&count).Error
	return count, err
}

// ToggleMember flips the membership of (projectID, userID) in a transaction.
func (r *GormProjectRepository) ToggleMember(projectID, userID uint64) (bool, error) {
	added := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var member models.ProjectMember
		err := tx.Where("project_id = ? AND user_id = ?", projectID, userID).
			First(&member).Error

		switch {
		case err == nil:
			return tx.Delete(&member).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			added = true
			return tx.Create(&models.ProjectMember{
				ProjectID: projectID,
				UserID:    userID,
			}).Error
		default:
			return err
		}
	})
	return added, err
}

// ListMembershipsByUser lists memberships of a user with projects preloaded
func (r *GormProjectRepository) ListMembershipsByUser(userID uint64) ([]models.ProjectMember, error) {
	var memberships []models.ProjectMember
	if err := r.db.Preload("Project").
		Where("user_id = ?", userID).
		Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}

// ListMemberUserIDs lists user IDs that belong to at least one project
func (r *GormProjectRepository) ListMemberUserIDs() ([]uint64, error) {
	var ids []uint64
	if err := r.db.Model(&models.ProjectMember{}).
		Distinct("user_id").
		Pluck("user_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// ListNonMembers lists standard users that are not members of the project
func (r *GormProjectRepository) ListNonMembers(projectID uint64) ([]models.User, error) {
	memberSubQuery := r.db.Model(&models.ProjectMember{}).
		Select("user_id").
		Where("project_id = ?", projectID)

	var users []models.User
	if err := r.db.Model(&models.User{}).
		Where("type_user <> ?", models.RoleAdmin).
		Where("id NOT IN (?)", memberSubQuery).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
