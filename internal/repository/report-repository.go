package repository

import (
	"github.com/CampusLancer/admin_service/internal/domain"
	"github.com/CampusLancer/admin_service/internal/dto"
	"gorm.io/gorm"
)

type ReportRepository interface {
	List(filter dto.ReportListFilter) ([]domain.Report, int64, error)
	Handle(id uint, status string, notes *string) error
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) List(filter dto.ReportListFilter) ([]domain.Report, int64, error) {
	q := r.db.Model(&domain.Report{})

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

	var reports []domain.Report
	err := q.
		Preload("Reporter").
		Preload("Reported").
		Order("created_at DESC").
		Limit(PerPage).
		Offset((page - 1) * PerPage).
		Find(&reports).Error
	if err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

// Handle overwrites status and notes unconditionally. Reports may be
// reopened, so no transition check is applied.
func (r *reportRepository) Handle(id uint, status string, notes *string) error {
	res := r.db.Model(&domain.Report{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":      status,
			"admin_notes": notes,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
