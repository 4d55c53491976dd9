package repository

import (
	"github.com/craftline/contentflow-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// FindByID finds a task by ID with optional preloading
func (r *GormTaskRepository) FindByID(id string, preload ...string) (*models.Task, error) {
	var task models.Task
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&task, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// ListByProject returns all tasks of a project in generation order
func (r *GormTaskRepository) ListByProject(projectID string) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Where("project_id = ?", projectID).Order("seq ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListByAssignee returns all tasks assigned to a staff email
func (r *GormTaskRepository) ListByAssignee(email string) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Where("assigned_to = ?", email).Order("created_at ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// CountByStatus returns the number of tasks holding a status
func (r *GormTaskRepository) CountByStatus(status models.WorkStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Task{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// Save persists changes to a task
func (r *GormTaskRepository) Save(task *models.Task) error {
	return r.db.Save(task).Error
}

// SaveWithProject persists a task change and its project roll-up atomically
func (r *GormTaskRepository) SaveWithProject(task *models.Task, project *models.Project) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(task).Error; err != nil {
			return err
		}
		return tx.Save(project).Error
	})
}
