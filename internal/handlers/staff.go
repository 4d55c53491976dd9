package handlers

import (
	"net/http"

	apierrors "github.com/craftline/contentflow-api/internal/errors"
	"github.com/craftline/contentflow-api/internal/models"
	"github.com/craftline/contentflow-api/internal/repository"
	"github.com/craftline/contentflow-api/internal/services"
	"github.com/gin-gonic/gin"
)

type StaffHandler struct {
	staff    repository.StaffRepository
	progress *services.ProgressService
}

func NewStaffHandler(staff repository.StaffRepository, progress *services.ProgressService) *StaffHandler {
	return &StaffHandler{
		staff:    staff,
		progress: progress,
	}
}

// ListStaff returns the roster, optionally filtered by ?role=.
func (h *StaffHandler) ListStaff(c *gin.Context) {
	var (
		members []models.StaffMember
		err     error
	)

	if role := c.Query("role"); role != "" {
		members, err = h.staff.ListByRole(models.StaffRole(role))
	} else {
		members, err = h.staff.List()
	}
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch staff")
		return
	}

	c.JSON(http.StatusOK, gin.H{"staff": members})
}

// GetOverview returns agency-wide dashboard stats.
func (h *StaffHandler) GetOverview(c *gin.Context) {
	stats, err := h.progress.Overview()
	if err != nil {
		apierrors.InternalError(c, "Failed to compute overview")
		return
	}
	c.JSON(http.StatusOK, stats)
}
