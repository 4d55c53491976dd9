package repository

import (
	"github.com/craftline/contentflow-api/internal/models"
	"gorm.io/gorm"
)

// GormStaffRepository is a GORM implementation of StaffRepository
type GormStaffRepository struct {
	db *gorm.DB
}

// NewStaffRepository creates a new StaffRepository
func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &GormStaffRepository{db: db}
}

// List returns the whole roster in seeding order
func (r *GormStaffRepository) List() ([]models.StaffMember, error) {
	var members []models.StaffMember
	if err := r.db.Order("id ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// ListByRole returns roster members holding a role, in seeding order
func (r *GormStaffRepository) ListByRole(role models.StaffRole) ([]models.StaffMember, error) {
	var members []models.StaffMember
	if err := r.db.Where("role = ?", role).Order("id ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
