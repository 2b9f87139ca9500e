package domain

import "gorm.io/gorm"

type Company struct {
	ID                 uint    `gorm:"primaryKey" json:"id"`
	UserID             uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	CompanyName        string  `gorm:"not null" json:"company_name"`
	CompanySize        string  `json:"company_size"`
	Industry           string  `json:"industry"`
	CompanyLocation    string  `json:"company_location"`
	CompanyWebsite     *string `json:"company_website,omitempty"`
	CompanyDescription string  `json:"company_description"`
	VerificationStatus string  `gorm:"type:varchar(20);not null;default:pending" json:"verification_status"`
	TotalJobsPosted    int     `gorm:"not null;default:0" json:"total_jobs_posted"`
	Rating             float64 `gorm:"type:decimal(3,2);not null;default:0" json:"rating"`
	IsFeatured         bool    `gorm:"not null;default:false" json:"is_featured"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	gorm.Model
}
