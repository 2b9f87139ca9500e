package domain

import (
	"time"

	"gorm.io/gorm"
)

const (
	ApplicationPending  = "pending"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

type Application struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	JobID        uint       `gorm:"not null;index" json:"job_id"`
	StudentID    uint       `gorm:"not null;index" json:"student_id"`
	CoverLetter  string     `json:"cover_letter"`
	ProposedRate *float64   `gorm:"type:decimal(10,2)" json:"proposed_rate,omitempty"`
	Status       string     `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	AppliedAt    time.Time  `gorm:"not null" json:"applied_at"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
	CompanyNotes *string    `json:"company_notes,omitempty"`

	Job     *Job     `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Student *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`

	gorm.Model
}
