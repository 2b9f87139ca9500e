package dto

import "github.com/CampusLancer/admin_service/internal/domain"

// PlatformStats is the counter block behind GET /api/admin/stats.
type PlatformStats struct {
	TotalUsers                   int64 `json:"total_users"`
	TotalStudents                int64 `json:"total_students"`
	TotalCompanies               int64 `json:"total_companies"`
	VerifiedStudents             int64 `json:"verified_students"`
	VerifiedCompanies            int64 `json:"verified_companies"`
	PendingStudentVerifications  int64 `json:"pending_student_verifications"`
	PendingCompanyVerifications  int64 `json:"pending_company_verifications"`
	TotalJobs                    int64 `json:"total_jobs"`
	ActiveJobs                   int64 `json:"active_jobs"`
	PendingJobs                  int64 `json:"pending_jobs"`
	TotalApplications            int64 `json:"total_applications"`
}

// PendingVerifications groups the two review queues behind
// GET /api/admin/pending-verifications.
type PendingVerifications struct {
	Students  []domain.Student `json:"students"`
	Companies []domain.Company `json:"companies"`
}

type VerifyRequest struct {
	Status string `json:"status" validate:"required" example:"approved"`
}

type ModerateJobRequest struct {
	Status     string  `json:"status" validate:"required" example:"active"`
	AdminNotes *string `json:"admin_notes,omitempty"`
}

type HandleReportRequest struct {
	Status     string  `json:"status" validate:"required" example:"resolved"`
	AdminNotes *string `json:"admin_notes,omitempty"`
}

type UserListFilter struct {
	Role       string
	IsVerified *bool
	Search     string
	Page       int
}

type JobListFilter struct {
	Status string
	Page   int
}

type ReportListFilter struct {
	Status string
	Page   int
}

// PageResult wraps paginated collection responses. PerPage is fixed at
// 20 by the repositories.
type PageResult struct {
	Data       any   `json:"data"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}
