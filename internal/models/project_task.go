package models

import (
	"time"

	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusPending TaskStatus = "en_attente"
	TaskStatusOngoing TaskStatus = "en_cours"
	TaskStatusDone    TaskStatus = "terminé"
)

// taskStatusRank orders the task lifecycle for the forward-only rule applied
// to standard users.
var taskStatusRank = map[TaskStatus]int{
	TaskStatusPending: 0,
	TaskStatusOngoing: 1,
	TaskStatusDone:    2,
}

type ProjectTask struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	Status      TaskStatus     `gorm:"type:varchar(20);not null;default:'en_attente';index" json:"status"`
	DueDate     time.Time      `gorm:"type:date" json:"due_date"`
	Description string         `gorm:"type:text;not null" json:"description"`
	CreatedBy   uint64         `gorm:"not null" json:"created_by"`
	ProjectID   uint64         `gorm:"not null" json:"project_id"`
	UserID      uint64         `gorm:"not null" json:"user_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Creator  User    `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	Project  Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Assignee User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// ValidTaskStatus reports whether s belongs to the closed status set.
func ValidTaskStatus(s TaskStatus) bool {
	_, ok := taskStatusRank[s]
	return ok
}

// CanTransitionTaskStatus is the single gate for task status changes.
// Admins move freely within the enum; everyone else only forward
// (en_attente → en_cours → terminé).
func CanTransitionTaskStatus(from, to TaskStatus, admin bool) bool {
	if !ValidTaskStatus(to) {
		return false
	}
	if admin {
		return true
	}
	return taskStatusRank[to] >= taskStatusRank[from]
}

// Deletable reports whether the task may be removed. In-progress tasks are
// protected.
func (t *ProjectTask) Deletable() bool {
	return t.Status != TaskStatusOngoing
}
