package repository

import (
	"time"

	"github.com/CampusLancer/admin_service/internal/domain"
	"github.com/CampusLancer/admin_service/internal/dto"
	"gorm.io/gorm"
)

type JobRepository interface {
	FindByID(id uint) (*domain.Job, error)
	List(filter dto.JobListFilter) ([]domain.Job, int64, error)
	ListPending() ([]domain.Job, error)
	Moderate(id uint, status string, notes *string, publishedAt *time.Time) error
	ToggleFeatured(id uint) (bool, error)
	ToggleUrgent(id uint) (bool, error)
	Count() (int64, error)
	CountByStatus(status string) (int64, error)
	CountCreatedSince(t time.Time) (int64, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) FindByID(id uint) (*domain.Job, error) {
	var job domain.Job
	if err := r.db.First(&job, id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) List(filter dto.JobListFilter) ([]domain.Job, int64, error) {
	q := r.db.Model(&domain.Job{})

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}

	var jobs []domain.Job
	err := q.
		Preload("Company.User").
		Preload("Category").
		Order("created_at DESC").
		Limit(PerPage).
		Offset((page - 1) * PerPage).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobRepository) ListPending() ([]domain.Job, error) {
	var jobs []domain.Job
	err := r.db.
		Preload("Company.User").
		Preload("Category").
		Where("status = ?", domain.JobPending).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// Moderate overwrites the moderation fields. publishedAt nil clears the
// column; notes nil leaves whatever is stored.
func (r *jobRepository) Moderate(id uint, status string, notes *string, publishedAt *time.Time) error {
	updates := map[string]any{
		"status":       status,
		"published_at": nil,
	}
	if publishedAt != nil {
		updates["published_at"] = *publishedAt
	}
	if notes != nil {
		updates["admin_notes"] = *notes
	}

	res := r.db.Model(&domain.Job{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *jobRepository) ToggleFeatured(id uint) (bool, error) {
	job, err := r.FindByID(id)
	if err != nil {
		return false, err
	}
	next := !job.IsFeatured
	if err := r.setFlag(id, "is_featured", next); err != nil {
		return false, err
	}
	return next, nil
}

func (r *jobRepository) ToggleUrgent(id uint) (bool, error) {
	job, err := r.FindByID(id)
	if err != nil {
		return false, err
	}
	next := !job.IsUrgent
	if err := r.setFlag(id, "is_urgent", next); err != nil {
		return false, err
	}
	return next, nil
}

func (r *jobRepository) setFlag(id uint, column string, value bool) error {
	return r.db.Model(&domain.Job{}).
		Where("id = ?", id).
		Update(column, value).Error
}

func (r *jobRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&domain.Job{}).Count(&n).Error
	return n, err
}

func (r *jobRepository) CountByStatus(status string) (int64, error) {
	var n int64
	err := r.db.Model(&domain.Job{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

func (r *jobRepository) CountCreatedSince(t time.Time) (int64, error) {
	var n int64
	err := r.db.Model(&domain.Job{}).Where("created_at >= ?", t).Count(&n).Error
	return n, err
}
