package domain

import (
	"time"

	"gorm.io/gorm"
)

// Contract rows are created by the hiring flow in another service; the
// admin service only keeps the table in its migration set so referential
// cascades on user deletion behave.
type Contract struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	JobID         uint       `gorm:"not null;index" json:"job_id"`
	StudentID     uint       `gorm:"not null;index" json:"student_id"`
	CompanyID     uint       `gorm:"not null;index" json:"company_id"`
	ContractType  string     `gorm:"type:varchar(20)" json:"contract_type"`
	Rate          float64    `gorm:"type:decimal(10,2)" json:"rate"`
	TotalAmount   float64    `gorm:"type:decimal(12,2)" json:"total_amount"`
	Status        string     `gorm:"type:varchar(20);not null;default:active" json:"status"`
	PaymentStatus string     `gorm:"type:varchar(20);not null;default:pending" json:"payment_status"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`

	gorm.Model
}
