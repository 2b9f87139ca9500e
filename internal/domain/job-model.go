package domain

import (
	"time"

	"gorm.io/gorm"
)

const (
	JobPending  = "pending"
	JobActive   = "active"
	JobRejected = "rejected"
)

type Job struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	CompanyID         uint       `gorm:"not null;index" json:"company_id"`
	CategoryID        uint       `gorm:"not null;index" json:"category_id"`
	Title             string     `gorm:"not null" json:"title"`
	Description       string     `json:"description"`
	JobType           string     `gorm:"type:varchar(30)" json:"job_type"`
	WorkMode          string     `gorm:"type:varchar(30)" json:"work_mode"`
	PaymentType       string     `gorm:"type:varchar(30)" json:"payment_type"`
	BudgetMin         *float64   `gorm:"type:decimal(10,2)" json:"budget_min,omitempty"`
	BudgetMax         *float64   `gorm:"type:decimal(10,2)" json:"budget_max,omitempty"`
	Location          string     `json:"location"`
	ExperienceLevel   string     `json:"experience_level"`
	Status            string     `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	IsFeatured        bool       `gorm:"not null;default:false" json:"is_featured"`
	IsUrgent          bool       `gorm:"not null;default:false" json:"is_urgent"`
	AdminNotes        *string    `json:"admin_notes,omitempty"`
	PublishedAt       *time.Time `json:"published_at,omitempty"`
	TotalApplications int        `gorm:"not null;default:0" json:"total_applications"`
	TotalViews        int        `gorm:"not null;default:0" json:"total_views"`

	Company  *Company  `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	gorm.Model
}
