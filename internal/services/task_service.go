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
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidStatus   = errors.New("invalid status value")
	ErrVideoTaskManual = errors.New("a video task completes through its stages, not directly")
)

// TaskService handles task updates and the project counter roll-up.
type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
	}
}

// UpdateTaskInput is a partial-field patch; nil fields are preserved.
type UpdateTaskInput struct {
	Title             *string
	Status            *models.WorkStatus
	DeliveryDate      *time.Time
	ClearDeliveryDate bool
	AssignedTo        *string
	AssignedToName    *string
	ClearAssignee     bool
}

// GetTask returns a task by ID
func (s *TaskService) GetTask(taskID string) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// ListTasksByProject returns a project's tasks in generation order
func (s *TaskService) ListTasksByProject(projectID string) ([]models.Task, error) {
	return s.taskRepo.ListByProject(projectID)
}

// ListTasksByAssignee returns all tasks assigned to a staff email
func (s *TaskService) ListTasksByAssignee(email string) ([]models.Task, error) {
	return s.taskRepo.ListByAssignee(email)
}

// UpdateTask merges the patch into the task and rolls status changes up into
// the project's completed counters. Completing a task twice does not
// double-increment; leaving complete decrements symmetrically. A video task
// rejects a direct completion, its status only moves through the stage
// cascade.
func (s *TaskService) UpdateTask(taskID string, input UpdateTaskInput) (*models.Task, error) {
	storeMu.Lock()
	defer storeMu.Unlock()

	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		if task.Category == models.CategoryVideo &&
			*input.Status == models.StatusComplete && task.Status != models.StatusComplete {
			return nil, ErrVideoTaskManual
		}
	}

	oldStatus := task.Status

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.ClearDeliveryDate {
		task.DeliveryDate = nil
	} else if input.DeliveryDate != nil {
		task.DeliveryDate = input.DeliveryDate
	}
	if input.ClearAssignee {
		task.AssignedTo = nil
		task.AssignedToName = nil
	} else {
		if input.AssignedTo != nil {
			task.AssignedTo = input.AssignedTo
		}
		if input.AssignedToName != nil {
			task.AssignedToName = input.AssignedToName
		}
	}

	completed := oldStatus != models.StatusComplete && task.Status == models.StatusComplete
	reverted := oldStatus == models.StatusComplete && task.Status != models.StatusComplete

	if !completed && !reverted {
		if err := s.taskRepo.Save(task); err != nil {
			return nil, fmt.Errorf("failed to update task: %w", err)
		}
		return task, nil
	}

	project, err := s.projectRepo.FindByID(task.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to find project for roll-up: %w", err)
	}

	counter := project.CompletedCounter(task.Category)
	if completed {
		now := time.Now()
		task.CompletedAt = &now
		*counter = *counter + 1
	} else {
		task.CompletedAt = nil
		if *counter > 0 {
			*counter = *counter - 1
		}
	}

	if project.CompletedDeliverables() >= project.TotalDeliverables() {
		project.Status = models.ProjectCompleted
	} else {
		project.Status = models.ProjectActive
	}

	if err := s.taskRepo.SaveWithProject(task, project); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}
