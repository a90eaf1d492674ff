package models

import (
	"time"

	"gorm.io/gorm"
)

type ProjectStatus string

const (
	ProjectStatusPending   ProjectStatus = "En attente"
	ProjectStatusOngoing   ProjectStatus = "En cours"
	ProjectStatusDone      ProjectStatus = "Terminé"
	ProjectStatusCancelled ProjectStatus = "Annulé"
)

type Project struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Description string         `gorm:"column:desc_prj;type:text;not null" json:"desc_prj"`
	DueDate     time.Time      `gorm:"type:date;not null" json:"due_date"`
	Status      ProjectStatus  `gorm:"type:varchar(20);not null;default:'En cours'" json:"status"`
	CreatedBy   uint64         `gorm:"not null" json:"created_by"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Creator User            `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	Members []ProjectMember `gorm:"foreignKey:ProjectID" json:"members,omitempty"`
	Tasks   []ProjectTask   `gorm:"foreignKey:ProjectID" json:"tasks,omitempty"`
}

// ValidProjectStatus reports whether s belongs to the closed status set.
func ValidProjectStatus(s ProjectStatus) bool {
	switch s {
	case ProjectStatusPending, ProjectStatusOngoing, ProjectStatusDone, ProjectStatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionProjectStatus is the single gate for project status changes.
// The graph is currently free: any status may move to any other. A stricter
// policy only needs to change this function.
func CanTransitionProjectStatus(from, to ProjectStatus) bool {
	return ValidProjectStatus(to)
}

// Deletable reports whether the project may be removed. Pending and ongoing
// projects are protected.
func (p *Project) Deletable() bool {
	switch p.Status {
	case ProjectStatusOngoing, ProjectStatusPending:
		return false
	default:
		return true
	}
}
