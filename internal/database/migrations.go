package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/sdiallo/projecthub-api/internal/models"
)

// AddIndexes adds performance-critical indexes not covered by AutoMigrate tags.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		model   interface{}
		name    string
		columns string
		table   string
	}{
		// Project filtering and sorting
		{&models.Project{}, "idx_projects_created_by", "created_by", "projects"},
		{&models.Project{}, "idx_projects_due_date", "due_date", "projects"},

		// Project task lookups per project and per assignee
		{&models.ProjectTask{}, "idx_project_tasks_project_id", "project_id", "project_tasks"},
		{&models.ProjectTask{}, "idx_project_tasks_user_id", "user_id", "project_tasks"},

		// Membership lookups from both sides of the pair
		{&models.ProjectMember{}, "idx_project_users_project_id", "project_id", "project_users"},
		{&models.ProjectMember{}, "idx_project_users_user_id", "user_id", "project_users"},

		// Personal task listing per owner
		{&models.PersonalTask{}, "idx_tasks_user_id", "user_id", "tasks"},

		// Referral lookup at registration time
		{&models.Referral{}, "idx_referals_date_expiration", "date_expiration", "referals"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.model, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
