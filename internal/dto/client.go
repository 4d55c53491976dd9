package dto

import (
	"time"

	"github.com/craftline/contentflow-api/internal/models"
)

// ClientDTO represents a client in API responses
type ClientDTO struct {
	ID           string          `json:"id"`
	BusinessName string          `json:"business_name"`
	OwnerName    string          `json:"owner_name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Plan         models.PlanTier `json:"plan"`
	MSAFile      string          `json:"msa_file,omitempty"`
	AssetsFile   string          `json:"assets_file,omitempty"`
	CreatedBy    string          `json:"created_by"`
	CreatedAt    time.Time       `json:"created_at"`
	Progress     *int            `json:"progress,omitempty"`
}

// ProjectDTO represents a monthly project ledger in API responses
type ProjectDTO struct {
	ID        string               `json:"id"`
	ClientID  string               `json:"client_id"`
	Period    string               `json:"period"`
	Status    models.ProjectStatus `json:"status"`
	Totals    models.PlanQuotas    `json:"totals"`
	Completed models.PlanQuotas    `json:"completed"`
	CreatedAt time.Time            `json:"created_at"`
}

// ToClientDTO converts a Client model to ClientDTO
func ToClientDTO(client models.Client) ClientDTO {
	return ClientDTO{
		ID:           client.ID,
		BusinessName: client.BusinessName,
		OwnerName:    client.OwnerName,
		Email:        client.Email,
		Phone:        client.Phone,
		Plan:         client.Plan,
		MSAFile:      client.MSAFile,
		AssetsFile:   client.AssetsFile,
		CreatedBy:    client.CreatedBy,
		CreatedAt:    client.CreatedAt,
	}
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:       project.ID,
		ClientID: project.ClientID,
		Period:   project.Period,
		Status:   project.Status,
		Totals: models.PlanQuotas{
			Posts:        project.TotalPosts,
			Videos:       project.TotalVideos,
			Infographics: project.TotalInfographics,
			Newsletters:  project.TotalNewsletters,
			Podcasts:     project.TotalPodcasts,
		},
		Completed: models.PlanQuotas{
			Posts:        project.CompletedPosts,
			Videos:       project.CompletedVideos,
			Infographics: project.CompletedInfographics,
			Newsletters:  project.CompletedNewsletters,
			Podcasts:     project.CompletedPodcasts,
		},
		CreatedAt: project.CreatedAt,
	}
}
