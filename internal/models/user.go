package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleStandard UserRole = "standard"
)

type User struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	Name         string         `gorm:"type:varchar(255);not null" json:"name"`
	Email        string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"column:password;type:varchar(255);not null" json:"-"`
	Role         UserRole       `gorm:"column:type_user;type:varchar(20);not null;default:'standard'" json:"type_user"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Projects      []Project       `gorm:"foreignKey:CreatedBy" json:"-"`
	Memberships   []ProjectMember `gorm:"foreignKey:UserID" json:"-"`
	PersonalTasks []PersonalTask  `gorm:"foreignKey:UserID" json:"-"`
}

// IsAdmin reports whether the user carries the admin role. The role set is
// closed; anything outside the enum counts as non-admin.
func (u *User) IsAdmin() bool {
	switch u.Role {
	case RoleAdmin:
		return true
	case RoleStandard:
		return false
	default:
		return false
	}
}
