package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/CampusLancer/admin_service/internal/domain"
	"github.com/CampusLancer/admin_service/internal/dto"
	"github.com/CampusLancer/admin_service/internal/interfaces"
	"github.com/CampusLancer/admin_service/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AdminService interface {
	// Dashboard
	GetStats() (*dto.PlatformStats, error)

	// User management
	ListUsers(filter dto.UserListFilter) (*dto.PageResult, error)
	GetUser(id uint) (*domain.User, error)
	DeleteUser(id uint) error
	ToggleUserStatus(id uint) (bool, error)

	// Verification workflow
	PendingVerifications() (*dto.PendingVerifications, error)
	VerifyStudent(id uint, decision string) error
	VerifyCompany(id uint, decision string) error

	// Job moderation
	ListJobs(filter dto.JobListFilter) (*dto.PageResult, error)
	PendingJobs() ([]domain.Job, error)
	ModerateJob(id uint, decision string, notes *string) error
	ToggleFeatured(id uint) (bool, error)
	ToggleUrgent(id uint) (bool, error)

	// Reports
	ListReports(filter dto.ReportListFilter) (*dto.PageResult, error)
	HandleReport(id uint, status string, notes *string) error

	// Authorization gate
	IsAdmin(userID uint) (bool, error)
}

type adminService struct {
	users        repository.UserRepository
	students     repository.StudentRepository
	companies    repository.CompanyRepository
	jobs         repository.JobRepository
	applications repository.ApplicationRepository
	reports      repository.ReportRepository

	producer interfaces.ProducerHandler
	clock    func() time.Time
	log      *zap.Logger
}

func NewAdminService(
	users repository.UserRepository,
	students repository.StudentRepository,
	companies repository.CompanyRepository,
	jobs repository.JobRepository,
	applications repository.ApplicationRepository,
	reports repository.ReportRepository,
	producer interfaces.ProducerHandler,
	clock func() time.Time,
	log *zap.Logger,
) AdminService {
	if clock == nil {
		clock = time.Now
	}
	return &adminService{
		users:        users,
		students:     students,
		companies:    companies,
		jobs:         jobs,
		applications: applications,
		reports:      reports,
		producer:     producer,
		clock:        clock,
		log:          log,
	}
}

// notFound maps the ORM's record-not-found onto the shared taxonomy.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

func (s *adminService) GetStats() (*dto.PlatformStats, error) {
	stats := &dto.PlatformStats{}
	var err error

	if stats.TotalUsers, err = s.users.Count(); err != nil {
		return nil, err
	}
	if stats.TotalStudents, err = s.students.Count(); err != nil {
		return nil, err
	}
	if stats.TotalCompanies, err = s.companies.Count(); err != nil {
		return nil, err
	}
	if stats.VerifiedStudents, err = s.students.CountByVerification(domain.VerifyApproved); err != nil {
		return nil, err
	}
	if stats.VerifiedCompanies, err = s.companies.CountByVerification(domain.VerifyApproved); err != nil {
		return nil, err
	}
	if stats.PendingStudentVerifications, err = s.students.CountByVerification(domain.VerifyPending); err != nil {
		return nil, err
	}
	if stats.PendingCompanyVerifications, err = s.companies.CountByVerification(domain.VerifyPending); err != nil {
		return nil, err
	}
	if stats.TotalJobs, err = s.jobs.Count(); err != nil {
		return nil, err
	}
	if stats.ActiveJobs, err = s.jobs.CountByStatus(domain.JobActive); err != nil {
		return nil, err
	}
	if stats.PendingJobs, err = s.jobs.CountByStatus(domain.JobPending); err != nil {
		return nil, err
	}
	if stats.TotalApplications, err = s.applications.Count(); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *adminService) ListUsers(filter dto.UserListFilter) (*dto.PageResult, error) {
	users, total, err := s.users.List(filter)
	if err != nil {
		return nil, err
	}
	return pageResult(users, filter.Page, total), nil
}

func (s *adminService) GetUser(id uint) (*domain.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, notFound(err)
	}
	return user, nil
}

func (s *adminService) DeleteUser(id uint) error {
	if err := s.users.Delete(id); err != nil {
		return notFound(err)
	}
	s.log.Info("user deleted", zap.Uint("user_id", id))
	return nil
}

func (s *adminService) ToggleUserStatus(id uint) (bool, error) {
	active, err := s.users.ToggleActive(id)
	if err != nil {
		return false, notFound(err)
	}
	return active, nil
}

func (s *adminService) PendingVerifications() (*dto.PendingVerifications, error) {
	students, err := s.students.ListPending()
	if err != nil {
		return nil, err
	}
	companies, err := s.companies.ListPending()
	if err != nil {
		return nil, err
	}
	return &dto.PendingVerifications{
		Students:  students,
		Companies: companies,
	}, nil
}

func validDecision(decision string) bool {
	return decision == domain.VerifyApproved || decision == domain.VerifyRejected
}

func (s *adminService) VerifyStudent(id uint, decision string) error {
	if !validDecision(decision) {
		return fmt.Errorf("%w: status %q", domain.ErrInvalidDecision, decision)
	}

	student, err := s.students.FindByID(id)
	if err != nil {
		return notFound(err)
	}
	if err := s.students.Decide(id, decision); err != nil {
		return notFound(err)
	}

	s.publish(dto.EventStudentVerified, dto.VerificationDecidedEvent{
		ProfileID: id,
		UserID:    student.UserID,
		Status:    decision,
	})
	s.log.Info("student verification decided",
		zap.Uint("student_id", id), zap.String("status", decision))
	return nil
}

func (s *adminService) VerifyCompany(id uint, decision string) error {
	if !validDecision(decision) {
		return fmt.Errorf("%w: status %q", domain.ErrInvalidDecision, decision)
	}

	company, err := s.companies.FindByID(id)
	if err != nil {
		return notFound(err)
	}
	if err := s.companies.Decide(id, decision); err != nil {
		return notFound(err)
	}

	s.publish(dto.EventCompanyVerified, dto.VerificationDecidedEvent{
		ProfileID: id,
		UserID:    company.UserID,
		Status:    decision,
	})
	s.log.Info("company verification decided",
		zap.Uint("company_id", id), zap.String("status", decision))
	return nil
}

func (s *adminService) ListJobs(filter dto.JobListFilter) (*dto.PageResult, error) {
	jobs, total, err := s.jobs.List(filter)
	if err != nil {
		return nil, err
	}
	return pageResult(jobs, filter.Page, total), nil
}

func (s *adminService) PendingJobs() ([]domain.Job, error) {
	return s.jobs.ListPending()
}

func (s *adminService) ModerateJob(id uint, decision string, notes *string) error {
	if decision != domain.JobActive && decision != domain.JobRejected {
		return fmt.Errorf("%w: status %q", domain.ErrInvalidDecision, decision)
	}

	job, err := s.jobs.FindByID(id)
	if err != nil {
		return notFound(err)
	}

	// Approval stamps the publication time; rejection clears it.
	var publishedAt *time.Time
	if decision == domain.JobActive {
		now := s.clock()
		publishedAt = &now
	}
	if err := s.jobs.Moderate(id, decision, notes, publishedAt); err != nil {
		return notFound(err)
	}

	s.publish(dto.EventJobModerated, dto.JobModeratedEvent{
		JobID:     id,
		CompanyID: job.CompanyID,
		Status:    decision,
	})
	s.log.Info("job moderated",
		zap.Uint("job_id", id), zap.String("status", decision))
	return nil
}

func (s *adminService) ToggleFeatured(id uint) (bool, error) {
	featured, err := s.jobs.ToggleFeatured(id)
	if err != nil {
		return false, notFound(err)
	}
	return featured, nil
}

func (s *adminService) ToggleUrgent(id uint) (bool, error) {
	urgent, err := s.jobs.ToggleUrgent(id)
	if err != nil {
		return false, notFound(err)
	}
	return urgent, nil
}

func (s *adminService) ListReports(filter dto.ReportListFilter) (*dto.PageResult, error) {
	reports, total, err := s.reports.List(filter)
	if err != nil {
		return nil, err
	}
	return pageResult(reports, filter.Page, total), nil
}

func (s *adminService) HandleReport(id uint, status string, notes *string) error {
	switch status {
	case domain.ReportReviewing, domain.ReportResolved, domain.ReportDismissed:
	default:
		return fmt.Errorf("%w: status %q", domain.ErrInvalidDecision, status)
	}

	if err := s.reports.Handle(id, status, notes); err != nil {
		return notFound(err)
	}

	s.publish(dto.EventReportHandled, dto.ReportHandledEvent{
		ReportID: id,
		Status:   status,
	})
	return nil
}

func (s *adminService) IsAdmin(userID uint) (bool, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return false, notFound(err)
	}
	return user.Role == domain.RoleAdmin && user.IsActive, nil
}

// publish sends a decision event best-effort; a broker outage must not
// fail the admin operation.
func (s *adminService) publish(key string, event any) {
	if s.producer == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.log.Warn("event marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.producer.PublishMessage([]byte(key), payload); err != nil {
		s.log.Warn("event publish failed", zap.String("key", key), zap.Error(err))
	}
}

func pageResult(data any, page int, total int64) *dto.PageResult {
	if page < 1 {
		page = 1
	}
	totalPages := int((total + repository.PerPage - 1) / repository.PerPage)
	return &dto.PageResult{
		Data:       data,
		Page:       page,
		PerPage:    repository.PerPage,
		Total:      total,
		TotalPages: totalPages,
	}
}
