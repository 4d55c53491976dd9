package repository

import (
	"github.com/craftline/contentflow-api/internal/models"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// FindByID finds a project by ID
func (r *GormProjectRepository) FindByID(id string) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByClientAndPeriod finds the project for a client and period key
func (r *GormProjectRepository) FindByClientAndPeriod(clientID, period string) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, "client_id = ? AND period = ?", clientID, period).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// ListByClient returns all projects of a client, newest period first
func (r *GormProjectRepository) ListByClient(clientID string) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Where("client_id = ?", clientID).Order("period DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Save persists changes to a project
func (r *GormProjectRepository) Save(project *models.Project) error {
	return r.db.Save(project).Error
}
