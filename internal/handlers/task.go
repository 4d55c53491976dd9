package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/craftline/contentflow-api/internal/dto"
	apierrors "github.com/craftline/contentflow-api/internal/errors"
	"github.com/craftline/contentflow-api/internal/middleware"
	"github.com/craftline/contentflow-api/internal/models"
	"github.com/craftline/contentflow-api/internal/services"
	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	tasks    *services.TaskService
	stages   *services.StageService
	progress *services.ProgressService
	clients  *services.ClientService
	ai       *services.AIService
}

func NewTaskHandler(tasks *services.TaskService, stages *services.StageService, progress *services.ProgressService, clients *services.ClientService, ai *services.AIService) *TaskHandler {
	return &TaskHandler{
		tasks:    tasks,
		stages:   stages,
		progress: progress,
		clients:  clients,
		ai:       ai,
	}
}

// ListProjectTasks returns all tasks of a project
func (h *TaskHandler) ListProjectTasks(c *gin.Context) {
	tasks, err := h.tasks.ListTasksByProject(c.Param("id"))
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": dto.ToTaskDTOs(tasks)})
}

// ListTasks returns tasks for an assignee; without ?assignee= it lists the
// acting staff member's own tasks.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	assignee := c.Query("assignee")
	if assignee == "" {
		actor, ok := middleware.GetActorEmail(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}
		assignee = actor
	}

	tasks, err := h.tasks.ListTasksByAssignee(assignee)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": dto.ToTaskDTOs(tasks)})
}

// UpdateTaskRequest is the partial-field patch body for a task.
type UpdateTaskRequest struct {
	Title             *string    `json:"title"`
	Status            *string    `json:"status"`
	DeliveryDate      *time.Time `json:"delivery_date"`
	ClearDeliveryDate bool       `json:"clear_delivery_date"`
	AssignedTo        *string    `json:"assigned_to"`
	AssignedToName    *string    `json:"assigned_to_name"`
	ClearAssignee     bool       `json:"clear_assignee"`
}

// UpdateTask applies a partial update; completions roll up into the project
// counters.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.UpdateTaskInput{
		Title:             req.Title,
		DeliveryDate:      req.DeliveryDate,
		ClearDeliveryDate: req.ClearDeliveryDate,
		AssignedTo:        req.AssignedTo,
		AssignedToName:    req.AssignedToName,
		ClearAssignee:     req.ClearAssignee,
	}
	if req.Status != nil {
		status := models.WorkStatus(*req.Status)
		input.Status = &status
	}

	task, err := h.tasks.UpdateTask(c.Param("id"), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			apierrors.NotFound(c, "Task not found")
		case errors.Is(err, services.ErrInvalidStatus):
			apierrors.BadRequest(c, "Invalid status value")
		case errors.Is(err, services.ErrVideoTaskManual):
			apierrors.Conflict(c, apierrors.ErrCodeInvalidOperation, "A video task completes through its stages")
		default:
			apierrors.InternalError(c, "Failed to update task")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// GetTaskProgress returns a video task's stage completion percentage.
func (h *TaskHandler) GetTaskProgress(c *gin.Context) {
	taskID := c.Param("id")

	if _, err := h.tasks.GetTask(taskID); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			apierrors.NotFound(c, "Task not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch task")
		return
	}

	progress, err := h.progress.VideoTaskProgress(taskID)
	if err != nil {
		apierrors.InternalError(c, "Failed to compute progress")
		return
	}

	c.JSON(http.StatusOK, gin.H{"task_id": taskID, "progress": progress})
}

// ListTaskStages returns a video task's stages, ascending by stage number.
func (h *TaskHandler) ListTaskStages(c *gin.Context) {
	stages, err := h.stages.ListStagesByTask(c.Param("id"))
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch stages")
		return
	}
	c.JSON(http.StatusOK, gin.H{"stages": dto.ToStageDTOs(stages)})
}

// GenerateScriptBrief drafts a script brief for a video task via OpenAI.
func (h *TaskHandler) GenerateScriptBrief(c *gin.Context) {
	if h.ai == nil {
		apierrors.ServiceUnavailable(c, "AI assistance is not configured")
		return
	}

	task, err := h.tasks.GetTask(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			apierrors.NotFound(c, "Task not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch task")
		return
	}
	if task.Category != models.CategoryVideo {
		apierrors.BadRequest(c, "Script briefs apply to video tasks only")
		return
	}

	client, err := h.clients.GetClient(task.ClientID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch client")
		return
	}

	brief, err := h.ai.GenerateScriptBrief(c.Request.Context(), client, task)
	if err != nil {
		apierrors.ServiceUnavailable(c, "Failed to generate script brief")
		return
	}

	c.JSON(http.StatusOK, gin.H{"task_id": task.ID, "brief": brief})
}
