package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/craftline/contentflow-api/internal/models"
	"github.com/craftline/contentflow-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrStageNotFound = errors.New("stage not found")

	// ErrStageBlocked is the user-facing dependency violation: the stage's
	// predecessor is not complete yet.
	ErrStageBlocked = errors.New("cannot update this stage until the previous stage is complete")
)

// StageService enforces the linear stage dependency of video pipelines and
// cascades stage completion into the parent task and project ledger.
type StageService struct {
	stageRepo   repository.StageRepository
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
}

// NewStageService creates a new StageService
func NewStageService(stageRepo repository.StageRepository, taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository) *StageService {
	return &StageService{
		stageRepo:   stageRepo,
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
	}
}

// UpdateStageInput is a partial-field patch; nil fields are preserved.
type UpdateStageInput struct {
	Status            *models.WorkStatus
	DeliveryDate      *time.Time
	ClearDeliveryDate bool
	AssignedTo        *string
	AssignedToName    *string
	ClearAssignee     bool
	Notes             *string
}

// GetStage returns a stage by ID
func (s *StageService) GetStage(stageID string) (*models.VideoStage, error) {
	stage, err := s.stageRepo.FindByID(stageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStageNotFound
		}
		return nil, fmt.Errorf("failed to find stage: %w", err)
	}
	return stage, nil
}

// ListStagesByTask returns a task's stages, ascending by stage number
func (s *StageService) ListStagesByTask(taskID string) ([]models.VideoStage, error) {
	return s.stageRepo.ListByTask(taskID)
}

// ListStagesByAssignee returns all stages assigned to a staff email
func (s *StageService) ListStagesByAssignee(email string) ([]models.VideoStage, error) {
	return s.stageRepo.ListByAssignee(email)
}

// UpdateStage merges the patch into the stage, guarded by the dependency
// gate: a transition into in-progress or complete is rejected, without any
// mutation, while the preceding stage is incomplete. Entering complete stamps
// the completion time and, once all five stages are complete, completes the
// parent task and increments the project's video counter in the same
// transaction. Leaving complete reverses the cascade symmetrically.
func (s *StageService) UpdateStage(stageID string, input UpdateStageInput) (*models.VideoStage, error) {
	storeMu.Lock()
	defer storeMu.Unlock()

	stage, err := s.stageRepo.FindByID(stageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStageNotFound
		}
		return nil, fmt.Errorf("failed to find stage: %w", err)
	}

	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		if err := s.checkDependency(stage, *input.Status); err != nil {
			return nil, err
		}
	}

	oldStatus := stage.Status

	if input.Status != nil {
		stage.Status = *input.Status
	}
	if input.ClearDeliveryDate {
		stage.DeliveryDate = nil
	} else if input.DeliveryDate != nil {
		stage.DeliveryDate = input.DeliveryDate
	}
	if input.ClearAssignee {
		stage.AssignedTo = nil
		stage.AssignedToName = nil
	} else {
		if input.AssignedTo != nil {
			stage.AssignedTo = input.AssignedTo
		}
		if input.AssignedToName != nil {
			stage.AssignedToName = input.AssignedToName
		}
	}
	if input.Notes != nil {
		stage.Notes = *input.Notes
	}

	completed := oldStatus != models.StatusComplete && stage.Status == models.StatusComplete
	reverted := oldStatus == models.StatusComplete && stage.Status != models.StatusComplete

	switch {
	case completed:
		now := time.Now()
		stage.CompletedAt = &now
		return s.cascadeCompletion(stage)
	case reverted:
		stage.CompletedAt = nil
		return s.cascadeReversion(stage)
	default:
		if err := s.stageRepo.Save(stage); err != nil {
			return nil, fmt.Errorf("failed to update stage: %w", err)
		}
		return stage, nil
	}
}

// checkDependency rejects a forward transition while the predecessor stage is
// incomplete. Stage 1 has no predecessor and always passes. Backward
// transitions and re-assertions of the current status always pass, so
// reverting a pipeline never deadlocks behind its own reverted stages.
func (s *StageService) checkDependency(stage *models.VideoStage, next models.WorkStatus) error {
	if statusRank(next) <= statusRank(stage.Status) {
		return nil
	}
	if stage.DependsOnID == nil {
		return nil
	}

	dep, err := s.stageRepo.FindByID(*stage.DependsOnID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStageBlocked
		}
		return fmt.Errorf("failed to resolve stage dependency: %w", err)
	}
	if dep.Status != models.StatusComplete {
		return ErrStageBlocked
	}
	return nil
}

// statusRank orders the work statuses; the gate only guards movement to a
// higher rank.
func statusRank(s models.WorkStatus) int {
	switch s {
	case models.StatusInProgress:
		return 1
	case models.StatusComplete:
		return 2
	default:
		return 0
	}
}

// cascadeCompletion re-evaluates the pipeline after a stage completes. When
// all five stages are complete the parent task completes and the project's
// video counter moves, atomically with the stage write.
func (s *StageService) cascadeCompletion(stage *models.VideoStage) (*models.VideoStage, error) {
	allComplete, err := s.pipelineComplete(stage)
	if err != nil {
		return nil, err
	}
	if !allComplete {
		if err := s.stageRepo.Save(stage); err != nil {
			return nil, fmt.Errorf("failed to update stage: %w", err)
		}
		return stage, nil
	}

	task, err := s.taskRepo.FindByID(stage.TaskID)
	if err != nil {
		return nil, fmt.Errorf("failed to find parent task: %w", err)
	}
	if task.Status == models.StatusComplete {
		// Parent already rolled up; nothing further to move.
		if err := s.stageRepo.Save(stage); err != nil {
			return nil, fmt.Errorf("failed to update stage: %w", err)
		}
		return stage, nil
	}

	now := time.Now()
	task.Status = models.StatusComplete
	task.CompletedAt = &now

	project, err := s.projectRepo.FindByID(task.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to find project for roll-up: %w", err)
	}
	project.CompletedVideos = project.CompletedVideos + 1
	if project.CompletedDeliverables() >= project.TotalDeliverables() {
		project.Status = models.ProjectCompleted
	}

	if err := s.stageRepo.SaveCascade(stage, task, project); err != nil {
		return nil, fmt.Errorf("failed to update stage: %w", err)
	}
	return stage, nil
}

// cascadeReversion undoes the roll-up when a stage leaves complete: a parent
// task that had completed through the pipeline drops back to in-progress and
// the project's video counter decrements.
func (s *StageService) cascadeReversion(stage *models.VideoStage) (*models.VideoStage, error) {
	task, err := s.taskRepo.FindByID(stage.TaskID)
	if err != nil {
		return nil, fmt.Errorf("failed to find parent task: %w", err)
	}
	if task.Status != models.StatusComplete {
		if err := s.stageRepo.Save(stage); err != nil {
			return nil, fmt.Errorf("failed to update stage: %w", err)
		}
		return stage, nil
	}

	task.Status = models.StatusInProgress
	task.CompletedAt = nil

	project, err := s.projectRepo.FindByID(task.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to find project for roll-up: %w", err)
	}
	if project.CompletedVideos > 0 {
		project.CompletedVideos = project.CompletedVideos - 1
	}
	project.Status = models.ProjectActive

	if err := s.stageRepo.SaveCascade(stage, task, project); err != nil {
		return nil, fmt.Errorf("failed to update stage: %w", err)
	}
	return stage, nil
}

// pipelineComplete reports whether every stage of the parent task is
// complete, counting the in-memory state of the stage being updated.
func (s *StageService) pipelineComplete(updated *models.VideoStage) (bool, error) {
	stages, err := s.stageRepo.ListByTask(updated.TaskID)
	if err != nil {
		return false, fmt.Errorf("failed to list pipeline stages: %w", err)
	}
	for _, st := range stages {
		if st.ID == updated.ID {
			st = *updated
		}
		if st.Status != models.StatusComplete {
			return false, nil
		}
	}
	return len(stages) > 0, nil
}
