package dto

import (
	"time"

	"github.com/craftline/contentflow-api/internal/models"
)

// TaskDTO represents a deliverable task in API responses
type TaskDTO struct {
	ID             string              `json:"id"`
	ProjectID      string              `json:"project_id"`
	ClientID       string              `json:"client_id"`
	Category       models.TaskCategory `json:"category"`
	Seq            int                 `json:"seq"`
	Title          string              `json:"title"`
	Status         models.WorkStatus   `json:"status"`
	AssignedTo     *string             `json:"assigned_to,omitempty"`
	AssignedToName *string             `json:"assigned_to_name,omitempty"`
	DeliveryDate   *time.Time          `json:"delivery_date,omitempty"`
	CompletedAt    *time.Time          `json:"completed_at,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	Stages         []StageDTO          `json:"stages,omitempty"`
}

// StageDTO represents a video stage in API responses
type StageDTO struct {
	ID             string            `json:"id"`
	TaskID         string            `json:"task_id"`
	StageNumber    int               `json:"stage_number"`
	StageName      models.StageName  `json:"stage_name"`
	Status         models.WorkStatus `json:"status"`
	DependsOn      *string           `json:"depends_on,omitempty"`
	AssignedTo     *string           `json:"assigned_to,omitempty"`
	AssignedToName *string           `json:"assigned_to_name,omitempty"`
	DeliveryDate   *time.Time        `json:"delivery_date,omitempty"`
	CompletedAt    *time.Time        `json:"completed_at,omitempty"`
	Notes          string            `json:"notes,omitempty"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:             task.ID,
		ProjectID:      task.ProjectID,
		ClientID:       task.ClientID,
		Category:       task.Category,
		Seq:            task.Seq,
		Title:          task.Title,
		Status:         task.Status,
		AssignedTo:     task.AssignedTo,
		AssignedToName: task.AssignedToName,
		DeliveryDate:   task.DeliveryDate,
		CompletedAt:    task.CompletedAt,
		CreatedAt:      task.CreatedAt,
	}

	// Include stages if preloaded
	if len(task.Stages) > 0 {
		dto.Stages = make([]StageDTO, len(task.Stages))
		for i, stage := range task.Stages {
			dto.Stages[i] = ToStageDTO(stage)
		}
	}

	return dto
}

// ToStageDTO converts a VideoStage model to StageDTO
func ToStageDTO(stage models.VideoStage) StageDTO {
	return StageDTO{
		ID:             stage.ID,
		TaskID:         stage.TaskID,
		StageNumber:    stage.StageNumber,
		StageName:      stage.StageName,
		Status:         stage.Status,
		DependsOn:      stage.DependsOnID,
		AssignedTo:     stage.AssignedTo,
		AssignedToName: stage.AssignedToName,
		DeliveryDate:   stage.DeliveryDate,
		CompletedAt:    stage.CompletedAt,
		Notes:          stage.Notes,
	}
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	out := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		out[i] = ToTaskDTO(task)
	}
	return out
}

// ToStageDTOs converts a slice of stages
func ToStageDTOs(stages []models.VideoStage) []StageDTO {
	out := make([]StageDTO, len(stages))
	for i, stage := range stages {
		out[i] = ToStageDTO(stage)
	}
	return out
}
