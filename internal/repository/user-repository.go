package repository

import (
	"time"

	"github.com/CampusLancer/admin_service/internal/domain"
	"github.com/CampusLancer/admin_service/internal/dto"
	"gorm.io/gorm"
)

// PerPage is the fixed page size for every admin collection endpoint.
const PerPage = 20

type UserRepository interface {
	FindByID(id uint) (*domain.User, error)
	List(filter dto.UserListFilter) ([]domain.User, int64, error)
	ToggleActive(id uint) (bool, error)
	Delete(id uint) error
	Count() (int64, error)
	CountCreatedSince(t time.Time) (int64, error)
	CountCreatedBetween(from, to time.Time) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(id uint) (*domain.User, error) {
	user := &domain.User{}
	if err := r.db.
		Preload("Student").
		Preload("Company").
		First(user, id).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) List(filter dto.UserListFilter) ([]domain.User, int64, error) {
	q := r.db.Model(&domain.User{})

	if filter.Role != "" {
		q = q.Where("role = ?", filter.Role)
	}
	if filter.IsVerified != nil {
		q = q.Where("is_verified = ?", *filter.IsVerified)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}

	var users []domain.User
	err := q.
		Preload("Student").
		Preload("Company").
		Order("created_at DESC").
		Limit(PerPage).
		Offset((page - 1) * PerPage).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// ToggleActive flips is_active and reports the new value. Two calls in a
// row restore the original state.
func (r *userRepository) ToggleActive(id uint) (bool, error) {
	var user domain.User
	if err := r.db.First(&user, id).Error; err != nil {
		return false, err
	}
	next := !user.IsActive
	err := r.db.Model(&domain.User{}).
		Where("id = ?", id).
		Update("is_active", next).Error
	if err != nil {
		return false, err
	}
	return next, nil
}

func (r *userRepository) Delete(id uint) error {
	res := r.db.Delete(&domain.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&domain.User{}).Count(&n).Error
	return n, err
}

func (r *userRepository) CountCreatedSince(t time.Time) (int64, error) {
	var n int64
	err := r.db.Model(&domain.User{}).Where("created_at >= ?", t).Count(&n).Error
	return n, err
}

func (r *userRepository) CountCreatedBetween(from, to time.Time) (int64, error) {
	var n int64
	err := r.db.Model(&domain.User{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&n).Error
	return n, err
}
