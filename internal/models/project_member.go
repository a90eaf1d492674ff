package models

import "time"

// ProjectMember links a standard user to a project. The (project, user) pair
// is unique; membership is flipped by a toggle, not separate add/remove calls.
type ProjectMember struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	ProjectID uint64    `gorm:"uniqueIndex:idx_project_users_pair;not null" json:"project_id"`
	UserID    uint64    `gorm:"uniqueIndex:idx_project_users_pair;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (ProjectMember) TableName() string {
	return "project_users"
}
