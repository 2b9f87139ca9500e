package repository

import (
	"github.com/CampusLancer/admin_service/internal/dto"
	"gorm.io/gorm"
)

// AnalyticsRepository holds the cross-entity aggregation queries behind
// the dashboard report. Single-entity counts stay on the entity
// repositories.
type AnalyticsRepository interface {
	JobsByCategory() ([]dto.NameCount, error)
	JobsByType() ([]dto.TypeCount, error)
	JobsByWorkMode() ([]dto.ModeCount, error)
	TopCompanies(limit int) ([]dto.CompanyRank, error)
	TopCategories(limit int) ([]dto.CategoryRank, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// Table() drops GORM's soft-delete scope, so every query here filters
// deleted_at by hand; joined tables soft-delete too. Left-joined tables
// carry the filter in the join condition so the left rows survive.

// JobsByCategory inner-joins on purpose: jobs without a matching
// category row are excluded. TopCategories below left-joins the other
// way around; the dashboard relies on both behaviors.
func (r *analyticsRepository) JobsByCategory() ([]dto.NameCount, error) {
	var rows []dto.NameCount
	err := r.db.Table("jobs").
		Select("categories.name AS name, COUNT(*) AS count").
		Joins("JOIN categories ON jobs.category_id = categories.id").
		Where("jobs.deleted_at IS NULL AND categories.deleted_at IS NULL").
		Group("categories.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *analyticsRepository) JobsByType() ([]dto.TypeCount, error) {
	var rows []dto.TypeCount
	err := r.db.Table("jobs").
		Select("job_type AS type, COUNT(*) AS count").
		Where("deleted_at IS NULL").
		Group("job_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *analyticsRepository) JobsByWorkMode() ([]dto.ModeCount, error) {
	var rows []dto.ModeCount
	err := r.db.Table("jobs").
		Select("work_mode AS mode, COUNT(*) AS count").
		Where("deleted_at IS NULL").
		Group("work_mode").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *analyticsRepository) TopCompanies(limit int) ([]dto.CompanyRank, error) {
	var rows []dto.CompanyRank
	err := r.db.Table("companies").
		Select("users.name AS name, COUNT(DISTINCT jobs.id) AS jobs_posted, COUNT(applications.id) AS applications").
		Joins("JOIN users ON companies.user_id = users.id").
		Joins("LEFT JOIN jobs ON jobs.company_id = companies.id AND jobs.deleted_at IS NULL").
		Joins("LEFT JOIN applications ON applications.job_id = jobs.id AND applications.deleted_at IS NULL").
		Where("companies.deleted_at IS NULL AND users.deleted_at IS NULL").
		Group("companies.id, users.name").
		Order("applications DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *analyticsRepository) TopCategories(limit int) ([]dto.CategoryRank, error) {
	var rows []dto.CategoryRank
	err := r.db.Table("categories").
		Select("categories.name AS name, categories.icon AS icon, COUNT(jobs.id) AS job_count").
		Joins("LEFT JOIN jobs ON jobs.category_id = categories.id AND jobs.deleted_at IS NULL").
		Where("categories.deleted_at IS NULL").
		Group("categories.id, categories.name, categories.icon").
		Order("job_count DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
