package handlers

import (
	"net/http"

	apierrors "github.com/craftline/contentflow-api/internal/errors"
	"github.com/craftline/contentflow-api/internal/services"
	"github.com/gin-gonic/gin"
)

type SnapshotHandler struct {
	snapshots *services.SnapshotService
}

func NewSnapshotHandler(snapshots *services.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{snapshots: snapshots}
}

// ExportSnapshot dumps the four collections as one JSON document.
func (h *SnapshotHandler) ExportSnapshot(c *gin.Context) {
	snap, err := h.snapshots.Export()
	if err != nil {
		apierrors.InternalError(c, "Failed to export snapshot")
		return
	}
	c.JSON(http.StatusOK, snap)
}

// ImportSnapshot replaces the store contents with the posted snapshot.
func (h *SnapshotHandler) ImportSnapshot(c *gin.Context) {
	var snap services.Snapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		apierrors.BadRequest(c, "Invalid snapshot body")
		return
	}

	if err := h.snapshots.Import(&snap); err != nil {
		apierrors.InternalError(c, "Failed to import snapshot")
		return
	}

	c.Status(http.StatusNoContent)
}
