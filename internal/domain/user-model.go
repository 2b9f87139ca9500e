package domain

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleStudent = "student"
	RoleCompany = "company"
	RoleAdmin   = "admin"
)

type User struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	Name              string     `gorm:"not null" json:"name"`
	Email             string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash      string     `json:"-"`
	Role              string     `gorm:"type:varchar(20);not null" json:"role"`
	ProfilePicture    *string    `json:"profile_picture,omitempty"`
	Phone             *string    `json:"phone,omitempty"`
	IsVerified        bool       `gorm:"not null;default:false" json:"is_verified"`
	VerificationBadge bool       `gorm:"not null;default:false" json:"verification_badge"`
	IsActive          bool       `gorm:"not null;default:true" json:"is_active"`
	LastSeen          *time.Time `json:"last_seen,omitempty"`

	Student *Student `gorm:"foreignKey:UserID" json:"student,omitempty"`
	Company *Company `gorm:"foreignKey:UserID" json:"company,omitempty"`

	gorm.Model
}
