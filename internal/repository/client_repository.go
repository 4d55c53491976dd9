package repository

import (
	"github.com/craftline/contentflow-api/internal/database"
	"github.com/craftline/contentflow-api/internal/models"
	"github.com/craftline/contentflow-api/internal/utils"
	"gorm.io/gorm"
)

// GormClientRepository is a GORM implementation of ClientRepository
type GormClientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new ClientRepository
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &GormClientRepository{db: db}
}

// CreateWithPlan persists the whole client graph atomically
func (r *GormClientRepository) CreateWithPlan(client *models.Client, project *models.Project, tasks []models.Task, stages []models.VideoStage) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(client).Error; err != nil {
			return err
		}
		if err := tx.Create(project).Error; err != nil {
			return err
		}
		if len(tasks) > 0 {
			if err := tx.Create(&tasks).Error; err != nil {
				return err
			}
		}
		if len(stages) > 0 {
			if err := tx.Create(&stages).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByID finds a client by ID with optional preloading
func (r *GormClientRepository) FindByID(id string, preload ...string) (*models.Client, error) {
	var client models.Client
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&client, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// FindByEmail finds a client by its unique email
func (r *GormClientRepository) FindByEmail(email string) (*models.Client, error) {
	var client models.Client
	if err := r.db.First(&client, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// List returns all clients, newest first
func (r *GormClientRepository) List() ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.Order("created_at DESC").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// ListPaginated returns one page of clients, newest first, with the total
// row count
func (r *GormClientRepository) ListPaginated(params utils.PaginationParams) ([]models.Client, int64, error) {
	var total int64
	if err := r.db.Model(&models.Client{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var clients []models.Client
	err := r.db.Scopes(database.Paginate(params)).Order("created_at DESC").Find(&clients).Error
	if err != nil {
		return nil, 0, err
	}
	return clients, total, nil
}

// Count returns the number of clients
func (r *GormClientRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Client{}).Count(&count).Error
	return count, err
}
