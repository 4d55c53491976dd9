package handlers

import (
	"errors"
	"net/http"

	"github.com/craftline/contentflow-api/internal/dto"
	apierrors "github.com/craftline/contentflow-api/internal/errors"
	"github.com/craftline/contentflow-api/internal/middleware"
	"github.com/craftline/contentflow-api/internal/models"
	"github.com/craftline/contentflow-api/internal/services"
	"github.com/craftline/contentflow-api/internal/utils"
	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	clients  *services.ClientService
	progress *services.ProgressService
}

func NewClientHandler(clients *services.ClientService, progress *services.ProgressService) *ClientHandler {
	return &ClientHandler{
		clients:  clients,
		progress: progress,
	}
}

// CreateClient onboards a client. The plan expands synchronously into the
// current month's project, tasks and video stage pipelines.
func (h *ClientHandler) CreateClient(c *gin.Context) {
	actor, _ := middleware.GetActorEmail(c)

	type CreateClientRequest struct {
		BusinessName string `json:"business_name" binding:"required"`
		OwnerName    string `json:"owner_name" binding:"required"`
		Email        string `json:"email" binding:"required,email"`
		Phone        string `json:"phone"`
		Plan         string `json:"plan" binding:"required"`
		MSAFile      string `json:"msa_file"`
		AssetsFile   string `json:"assets_file"`
	}

	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	client, err := h.clients.CreateClient(services.CreateClientInput{
		BusinessName: req.BusinessName,
		OwnerName:    req.OwnerName,
		Email:        req.Email,
		Phone:        req.Phone,
		Plan:         models.PlanTier(req.Plan),
		MSAFile:      req.MSAFile,
		AssetsFile:   req.AssetsFile,
		CreatedBy:    actor,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownPlan):
			apierrors.UnknownPlan(c, "Unknown plan tier: "+req.Plan)
		case errors.Is(err, services.ErrEmailTaken):
			apierrors.Conflict(c, apierrors.ErrCodeAlreadyExists, "A client with this email already exists")
		case errors.Is(err, services.ErrBusinessNameRequired), errors.Is(err, services.ErrEmailRequired):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to create client")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToClientDTO(*client))
}

// ListClients returns all clients, or a single match when ?email= is given.
func (h *ClientHandler) ListClients(c *gin.Context) {
	if email := c.Query("email"); email != "" {
		client, err := h.clients.GetClientByEmail(email)
		if err != nil {
			if errors.Is(err, services.ErrClientNotFound) {
				c.JSON(http.StatusOK, gin.H{"clients": []dto.ClientDTO{}})
				return
			}
			apierrors.InternalError(c, "Failed to fetch client")
			return
		}
		c.JSON(http.StatusOK, gin.H{"clients": []dto.ClientDTO{dto.ToClientDTO(*client)}})
		return
	}

	params := utils.GetPaginationParams(c)
	clients, total, err := h.clients.ListClientsPaginated(params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch clients")
		return
	}

	out := make([]dto.ClientDTO, len(clients))
	for i, client := range clients {
		out[i] = dto.ToClientDTO(client)
	}
	c.JSON(http.StatusOK, gin.H{
		"clients": out,
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetClient returns a client by ID, with its current progress attached.
func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.clients.GetClient(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			apierrors.NotFound(c, "Client not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch client")
		return
	}

	out := dto.ToClientDTO(*client)
	if progress, err := h.progress.ClientProgress(client.ID); err == nil {
		out.Progress = &progress
	}

	c.JSON(http.StatusOK, out)
}

// GetCurrentProject returns the client's project for the present month.
func (h *ClientHandler) GetCurrentProject(c *gin.Context) {
	project, err := h.clients.GetCurrentProject(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			apierrors.NotFound(c, "No project for the current period")
			return
		}
		apierrors.InternalError(c, "Failed to fetch project")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// ListClientProjects returns the client's project history, newest period
// first.
func (h *ClientHandler) ListClientProjects(c *gin.Context) {
	clientID := c.Param("id")

	if _, err := h.clients.GetClient(clientID); err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			apierrors.NotFound(c, "Client not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch client")
		return
	}

	projects, err := h.clients.ListProjects(clientID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch projects")
		return
	}

	out := make([]dto.ProjectDTO, len(projects))
	for i, project := range projects {
		out[i] = dto.ToProjectDTO(project)
	}
	c.JSON(http.StatusOK, gin.H{"projects": out})
}

// GetClientProgress returns the current-period completion percentage.
func (h *ClientHandler) GetClientProgress(c *gin.Context) {
	clientID := c.Param("id")

	if _, err := h.clients.GetClient(clientID); err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			apierrors.NotFound(c, "Client not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch client")
		return
	}

	progress, err := h.progress.ClientProgress(clientID)
	if err != nil {
		apierrors.InternalError(c, "Failed to compute progress")
		return
	}

	c.JSON(http.StatusOK, gin.H{"client_id": clientID, "progress": progress})
}
