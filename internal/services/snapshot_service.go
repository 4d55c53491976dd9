package services

import (
	"fmt"
	"time"

	"github.com/craftline/contentflow-api/internal/models"
	"gorm.io/gorm"
)

// Snapshot is the portable form of the whole store: the four collections as
// flat lists with string ids and foreign keys, dates as ISO-8601 strings once
// JSON-encoded. Importing a snapshot reproduces identical logical state.
type Snapshot struct {
	ExportedAt time.Time           `json:"exported_at"`
	Clients    []models.Client     `json:"clients"`
	Projects   []models.Project    `json:"projects"`
	Tasks      []models.Task       `json:"tasks"`
	Stages     []models.VideoStage `json:"stages"`
}

// SnapshotService exports and imports the four collections wholesale, the way
// the store is backed up and moved between environments.
type SnapshotService struct {
	db *gorm.DB
}

// NewSnapshotService creates a new SnapshotService
func NewSnapshotService(db *gorm.DB) *SnapshotService {
	return &SnapshotService{db: db}
}

// Export dumps the four collections.
func (s *SnapshotService) Export() (*Snapshot, error) {
	snap := &Snapshot{ExportedAt: time.Now()}

	if err := s.db.Order("created_at ASC").Find(&snap.Clients).Error; err != nil {
		return nil, fmt.Errorf("failed to export clients: %w", err)
	}
	if err := s.db.Order("created_at ASC").Find(&snap.Projects).Error; err != nil {
		return nil, fmt.Errorf("failed to export projects: %w", err)
	}
	if err := s.db.Order("created_at ASC").Find(&snap.Tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to export tasks: %w", err)
	}
	if err := s.db.Order("task_id ASC, stage_number ASC").Find(&snap.Stages).Error; err != nil {
		return nil, fmt.Errorf("failed to export stages: %w", err)
	}

	return snap, nil
}

// Import replaces the four collections with the snapshot's contents in a
// single transaction.
func (s *SnapshotService) Import(snap *Snapshot) error {
	storeMu.Lock()
	defer storeMu.Unlock()

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.VideoStage{},
			&models.Task{},
			&models.Project{},
			&models.Client{},
		} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error; err != nil {
				return fmt.Errorf("failed to clear collection: %w", err)
			}
		}

		if len(snap.Clients) > 0 {
			if err := tx.Create(&snap.Clients).Error; err != nil {
				return fmt.Errorf("failed to import clients: %w", err)
			}
		}
		if len(snap.Projects) > 0 {
			if err := tx.Create(&snap.Projects).Error; err != nil {
				return fmt.Errorf("failed to import projects: %w", err)
			}
		}
		if len(snap.Tasks) > 0 {
			if err := tx.Create(&snap.Tasks).Error; err != nil {
				return fmt.Errorf("failed to import tasks: %w", err)
			}
		}
		if len(snap.Stages) > 0 {
			if err := tx.Create(&snap.Stages).Error; err != nil {
				return fmt.Errorf("failed to import stages: %w", err)
			}
		}
		return nil
	})
}
