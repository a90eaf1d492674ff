package models

import (
	"time"

	"gorm.io/gorm"
)

// Referral is an invitation code required for self-registration. Codes are
// reusable; validity depends only on the expiration date.
type Referral struct {
	ID             uint64         `gorm:"primarykey" json:"id"`
	Code           string         `gorm:"column:nom_ref;type:varchar(255);uniqueIndex;not null" json:"nom_ref"`
	ExpirationDate time.Time      `gorm:"column:date_expiration;type:date;not null" json:"date_expiration"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName keeps the legacy table spelling.
func (Referral) TableName() string {
	return "referals"
}

// IsExpired compares at date granularity: a code expiring today is still valid.
func (r *Referral) IsExpired(today time.Time) bool {
	y1, m1, d1 := today.Date()
	y2, m2, d2 := r.ExpirationDate.Date()
	day := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	exp := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return day.After(exp)
}
