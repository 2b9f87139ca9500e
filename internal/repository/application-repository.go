package repository

import (
	"github.com/CampusLancer/admin_service/internal/domain"
	"github.com/CampusLancer/admin_service/internal/dto"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	Count() (int64, error)
	CountByStatus(status string) (int64, error)
	GroupByStatus() ([]dto.StatusCount, error)
	ReviewWindows() ([]dto.ReviewWindow, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&domain.Application{}).Count(&n).Error
	return n, err
}

func (r *applicationRepository) CountByStatus(status string) (int64, error) {
	var n int64
	err := r.db.Model(&domain.Application{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, err
}

func (r *applicationRepository) GroupByStatus() ([]dto.StatusCount, error) {
	var rows []dto.StatusCount
	err := r.db.Model(&domain.Application{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *applicationRepository) ReviewWindows() ([]dto.ReviewWindow, error) {
	var rows []dto.ReviewWindow
	err := r.db.Model(&domain.Application{}).
		Select("applied_at, reviewed_at").
		Where("applied_at IS NOT NULL AND reviewed_at IS NOT NULL").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
