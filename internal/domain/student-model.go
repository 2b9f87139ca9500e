package domain

import "gorm.io/gorm"

const (
	VerifyPending  = "pending"
	VerifyApproved = "approved"
	VerifyRejected = "rejected"
)

type Student struct {
	ID                 uint    `gorm:"primaryKey" json:"id"`
	UserID             uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	University         string  `json:"university"`
	Department         string  `json:"department"`
	GraduationYear     *int    `json:"graduation_year,omitempty"`
	Bio                string  `json:"bio"`
	HourlyRate         float64 `gorm:"type:decimal(10,2)" json:"hourly_rate"`
	Skills             string  `json:"skills"`
	CompletedJobs      int     `gorm:"not null;default:0" json:"completed_jobs"`
	Rating             float64 `gorm:"type:decimal(3,2);not null;default:0" json:"rating"`
	VerificationStatus string  `gorm:"type:varchar(20);not null;default:pending" json:"verification_status"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	gorm.Model
}
