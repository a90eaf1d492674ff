package models

import (
	"time"

	"gorm.io/gorm"
)

// PersonalTask is a private to-do item owned by one user, unrelated to any
// project. The legacy owner_id column is kept for schema compatibility but
// user_id is the owner.
type PersonalTask struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"column:nom_task;type:varchar(255);not null;index" json:"nom_task"`
	Description string         `gorm:"type:text" json:"description"`
	DueDate     *time.Time     `gorm:"type:date;index" json:"due_date"`
	IsCompleted bool           `gorm:"not null;default:false" json:"is_completed"`
	IsImportant bool           `gorm:"not null;default:false" json:"is_important"`
	UserID      uint64         `gorm:"not null" json:"user_id"`
	OwnerID     *uint64        `json:"owner_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Owner User `gorm:"foreignKey:UserID" json:"owner,omitempty"`
}

func (PersonalTask) TableName() string {
	return "tasks"
}
