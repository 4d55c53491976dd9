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

type StageHandler struct {
	stages *services.StageService
}

func NewStageHandler(stages *services.StageService) *StageHandler {
	return &StageHandler{stages: stages}
}

// ListStages returns stages for an assignee; without ?assignee= it lists the
// acting staff member's own stages.
func (h *StageHandler) ListStages(c *gin.Context) {
	assignee := c.Query("assignee")
	if assignee == "" {
		actor, ok := middleware.GetActorEmail(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}
		assignee = actor
	}

	stages, err := h.stages.ListStagesByAssignee(assignee)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch stages")
		return
	}
	c.JSON(http.StatusOK, gin.H{"stages": dto.ToStageDTOs(stages)})
}

// UpdateStageRequest is the partial-field patch body for a stage.
type UpdateStageRequest struct {
	Status            *string    `json:"status"`
	DeliveryDate      *time.Time `json:"delivery_date"`
	ClearDeliveryDate bool       `json:"clear_delivery_date"`
	AssignedTo        *string    `json:"assigned_to"`
	AssignedToName    *string    `json:"assigned_to_name"`
	ClearAssignee     bool       `json:"clear_assignee"`
	Notes             *string    `json:"notes"`
}

// UpdateStage applies a partial update behind the dependency gate; the fifth
// completion cascades into the parent task and project ledger.
func (h *StageHandler) UpdateStage(c *gin.Context) {
	var req UpdateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.UpdateStageInput{
		DeliveryDate:      req.DeliveryDate,
		ClearDeliveryDate: req.ClearDeliveryDate,
		AssignedTo:        req.AssignedTo,
		AssignedToName:    req.AssignedToName,
		ClearAssignee:     req.ClearAssignee,
		Notes:             req.Notes,
	}
	if req.Status != nil {
		status := models.WorkStatus(*req.Status)
		input.Status = &status
	}

	stage, err := h.stages.UpdateStage(c.Param("id"), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrStageNotFound):
			apierrors.NotFound(c, "Stage not found")
		case errors.Is(err, services.ErrInvalidStatus):
			apierrors.BadRequest(c, "Invalid status value")
		case errors.Is(err, services.ErrStageBlocked):
			apierrors.Conflict(c, apierrors.ErrCodeStageBlocked, "Cannot update this stage until the previous stage is complete")
		default:
			apierrors.InternalError(c, "Failed to update stage")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToStageDTO(*stage))
}
