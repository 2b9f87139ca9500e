package repository

import (
	"github.com/CampusLancer/admin_service/internal/domain"
	"gorm.io/gorm"
)

type StudentRepository interface {
	FindByID(id uint) (*domain.Student, error)
	ListPending() ([]domain.Student, error)
	Decide(studentID uint, status string) error
	Count() (int64, error)
	CountByVerification(status string) (int64, error)
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) FindByID(id uint) (*domain.Student, error) {
	var student domain.Student
	if err := r.db.First(&student, id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) ListPending() ([]domain.Student, error) {
	var students []domain.Student
	err := r.db.
		Preload("User").
		Where("verification_status = ?", domain.VerifyPending).
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

// Decide moves the profile to the given status. Approval also mirrors the
// verification flags onto the owning user; both writes ride one
// transaction so a half-applied decision can never be observed.
func (r *studentRepository) Decide(studentID uint, status string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var student domain.Student
		if err := tx.First(&student, studentID).Error; err != nil {
			return err
		}

		res := tx.Model(&domain.Student{}).
			Where("id = ?", studentID).
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
			Where("id = ?", student.UserID).
			Updates(map[string]any{
				"is_verified":        true,
				"verification_badge": true,
			}).Error
	})
}

func (r *studentRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&domain.Student{}).Count(&n).Error
	return n, err
}

func (r *studentRepository) CountByVerification(status string) (int64, error) {
	var n int64
	err := r.db.Model(&domain.Student{}).
		Where("verification_status = ?", status).
		Count(&n).Error
	return n, err
}
