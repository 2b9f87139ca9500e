package repository

import (
	"github.com/CampusLancer/admin_service/internal/domain"
	"gorm.io/gorm"
)

type CompanyRepository interface {
	FindByID(id uint) (*domain.Company, error)
	ListPending() ([]domain.Company, error)
	Decide(companyID uint, status string) error
	Count() (int64, error)
	CountByVerification(status string) (int64, error)
}

type companyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) FindByID(id uint) (*domain.Company, error) {
	var company domain.Company
	if err := r.db.First(&company, id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) ListPending() ([]domain.Company, error) {
	var companies []domain.Company
	err := r.db.
		Preload("User").
		Where("verification_status = ?", domain.VerifyPending).
		Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}

// Decide mirrors studentRepository.Decide for company profiles.
func (r *companyRepository) Decide(companyID uint, status string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var company domain.Company
		if err := tx.First(&company, companyID).Error; err != nil {
			return err
		}

		res := tx.Model(&domain.Company{}).
			Where("id = ?", companyID).
			Update("verification_status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if status != domain.VerifyApproved {
			return nil
		}
		return tx.Model(&domain.User{}).
			Where("id = ?", company.UserID).
			Updates(map[string]any{
				"is_verified":        true,
				"verification_badge": true,
			}).Error
	})
}

func (r *companyRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&domain.Company{}).Count(&n).Error
	return n, err
}

func (r *companyRepository) CountByVerification(status string) (int64, error) {
	var n int64
	err := r.db.Model(&domain.Company{}).
		Where("verification_status = ?", status).
		Count(&n).Error
	return n, err
}
