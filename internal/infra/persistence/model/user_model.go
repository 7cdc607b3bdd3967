// Package model contains the GORM persistence models mirroring the database tables.
package model

import (
	"time"
)

// UserModel mirrors the 'users' table. The email column carries a real unique
// index; the application-level existence check before insert is only a fast
// path for a friendlier error message.
type UserModel struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	FirstName      string    `gorm:"type:varchar(20);not null"`
	LastName       string    `gorm:"type:varchar(20);not null"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordDigest string    `gorm:"column:password;type:char(64);not null"`
	CreatedAt      time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
