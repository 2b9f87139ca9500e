package dto

// Events published to the admin topic for the notifier service.

const (
	EventStudentVerified = "admin.student_verified"
	EventCompanyVerified = "admin.company_verified"
	EventJobModerated    = "admin.job_moderated"
	EventReportHandled   = "admin.report_handled"
)

type VerificationDecidedEvent struct {
	ProfileID uint   `json:"profile_id"`
	UserID    uint   `json:"user_id"`
	Status    string `json:"status"`
}

type JobModeratedEvent struct {
	JobID     uint   `json:"job_id"`
	CompanyID uint   `json:"company_id"`
	Status    string `json:"status"`
}

type ReportHandledEvent struct {
	ReportID uint   `json:"report_id"`
	Status   string `json:"status"`
}
