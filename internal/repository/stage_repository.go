package repository

import (
	"github.com/craftline/contentflow-api/internal/models"
	"gorm.io/gorm"
)

// GormStageRepository is a GORM implementation of StageRepository
type GormStageRepository struct {
	db *gorm.DB
}

// NewStageRepository creates a new StageRepository
func NewStageRepository(db *gorm.DB) StageRepository {
	return &GormStageRepository{db: db}
}

// FindByID finds a stage by ID
func (r *GormStageRepository) FindByID(id string) (*models.VideoStage, error) {
	var stage models.VideoStage
	if err := r.db.First(&stage, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &stage, nil
}

// ListByTask returns a task's stages sorted ascending by stage number
func (r *GormStageRepository) ListByTask(taskID string) ([]models.VideoStage, error) {
	var stages []models.VideoStage
	if err := r.db.Where("task_id = ?", taskID).Order("stage_number ASC").Find(&stages).Error; err != nil {
		return nil, err
	}
	return stages, nil
}

// ListByAssignee returns all stages assigned to a staff email
func (r *GormStageRepository) ListByAssignee(email string) ([]models.VideoStage, error) {
	var stages []models.VideoStage
	if err := r.db.Where("assigned_to = ?", email).Order("task_id ASC, stage_number ASC").Find(&stages).Error; err != nil {
		return nil, err
	}
	return stages, nil
}

// Save persists changes to a stage
func (r *GormStageRepository) Save(stage *models.VideoStage) error {
	return r.db.Save(stage).Error
}

// SaveCascade persists a stage change and any parent roll-up atomically
func (r *GormStageRepository) SaveCascade(stage *models.VideoStage, task *models.Task, project *models.Project) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(stage).Error; err != nil {
			return err
		}
		if task != nil {
			if err := tx.Save(task).Error; err != nil {
				return err
			}
		}
		if project != nil {
			if err := tx.Save(project).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
