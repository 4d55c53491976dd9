package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/craftline/contentflow-api/internal/models"
	"github.com/craftline/contentflow-api/internal/repository"
	"github.com/craftline/contentflow-api/internal/utils"
	"gorm.io/gorm"
)

// ProgressService computes the roll-up percentages the dashboards display.
// It never mutates anything.
type ProgressService struct {
	clientRepo  repository.ClientRepository
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
	stageRepo   repository.StageRepository
}

// NewProgressService creates a new ProgressService
func NewProgressService(clientRepo repository.ClientRepository, projectRepo repository.ProjectRepository, taskRepo repository.TaskRepository, stageRepo repository.StageRepository) *ProgressService {
	return &ProgressService{
		clientRepo:  clientRepo,
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		stageRepo:   stageRepo,
	}
}

// VideoTaskProgress returns a video task's completion percentage from its
// stages: 0, 20, 40, 60, 80 or 100. A task without stages reports 0.
func (s *ProgressService) VideoTaskProgress(taskID string) (int, error) {
	stages, err := s.stageRepo.ListByTask(taskID)
	if err != nil {
		return 0, fmt.Errorf("failed to list stages: %w", err)
	}
	if len(stages) == 0 {
		return 0, nil
	}

	complete := 0
	for _, stage := range stages {
		if stage.Status == models.StatusComplete {
			complete++
		}
	}
	return roundPercent(complete, len(stages)), nil
}

// ClientProgress returns the completion percentage of the client's
// current-period project, 0 when no such project exists.
func (s *ProgressService) ClientProgress(clientID string) (int, error) {
	project, err := s.projectRepo.FindByClientAndPeriod(clientID, utils.CurrentPeriod())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to find current project: %w", err)
	}

	total := project.TotalDeliverables()
	if total == 0 {
		return 0, nil
	}
	return roundPercent(project.CompletedDeliverables(), total), nil
}

// ClientOverview is one row of the agency-wide dashboard.
type ClientOverview struct {
	ClientID     string          `json:"client_id"`
	BusinessName string          `json:"business_name"`
	Plan         models.PlanTier `json:"plan"`
	Progress     int             `json:"progress"`
}

// OverviewStats summarizes the whole agency for the manager dashboard.
type OverviewStats struct {
	Clients         int64            `json:"clients"`
	TasksNotStarted int64            `json:"tasks_not_started"`
	TasksInProgress int64            `json:"tasks_in_progress"`
	TasksComplete   int64            `json:"tasks_complete"`
	PerClient       []ClientOverview `json:"per_client"`
}

// Overview aggregates client counts, task status counts and per-client
// progress for the manager dashboard.
func (s *ProgressService) Overview() (*OverviewStats, error) {
	clients, err := s.clientRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	stats := &OverviewStats{
		Clients:   int64(len(clients)),
		PerClient: make([]ClientOverview, 0, len(clients)),
	}

	for status, dst := range map[models.WorkStatus]*int64{
		models.StatusNotStarted: &stats.TasksNotStarted,
		models.StatusInProgress: &stats.TasksInProgress,
		models.StatusComplete:   &stats.TasksComplete,
	} {
		count, err := s.taskRepo.CountByStatus(status)
		if err != nil {
			return nil, fmt.Errorf("failed to count tasks: %w", err)
		}
		*dst = count
	}

	for _, client := range clients {
		progress, err := s.ClientProgress(client.ID)
		if err != nil {
			return nil, err
		}
		stats.PerClient = append(stats.PerClient, ClientOverview{
			ClientID:     client.ID,
			BusinessName: client.BusinessName,
			Plan:         client.Plan,
			Progress:     progress,
		})
	}

	return stats, nil
}

// roundPercent rounds half-up to the nearest integer percentage.
func roundPercent(completed, total int) int {
	return int(math.Floor(float64(completed)*100/float64(total) + 0.5))
}
