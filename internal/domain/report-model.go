package domain

import "gorm.io/gorm"

const (
	ReportPending   = "pending"
	ReportReviewing = "reviewing"
	ReportResolved  = "resolved"
	ReportDismissed = "dismissed"
)

type Report struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	ReporterID  uint    `gorm:"not null;index" json:"reporter_id"`
	ReportedID  uint    `gorm:"not null;index" json:"reported_id"`
	Reason      string  `gorm:"not null" json:"reason"`
	Description string  `json:"description"`
	Status      string  `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	AdminNotes  *string `json:"admin_notes,omitempty"`

	Reporter *User `gorm:"foreignKey:ReporterID" json:"reporter,omitempty"`
	Reported *User `gorm:"foreignKey:ReportedID" json:"reported,omitempty"`

	gorm.Model
}
