package models

import (
	"time"

	"gorm.io/gorm"
)

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
)

// Project is one client's deliverable quota and progress ledger for one
// calendar month. The period key is "YYYY-MM"; at most one project exists per
// (client, period) pair. Totals are copied from the plan catalog at creation
// and never change; completed counters move only through task roll-up.
type Project struct {
	ID       string        `gorm:"type:varchar(36);primarykey" json:"id"`
	ClientID string        `gorm:"type:varchar(36);not null;uniqueIndex:idx_projects_client_period" json:"client_id"`
	Period   string        `gorm:"type:varchar(7);not null;uniqueIndex:idx_projects_client_period" json:"period"`
	Status   ProjectStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`

	TotalPosts        int `gorm:"not null" json:"total_posts"`
	TotalVideos       int `gorm:"not null" json:"total_videos"`
	TotalInfographics int `gorm:"not null" json:"total_infographics"`
	TotalNewsletters  int `gorm:"not null" json:"total_newsletters"`
	TotalPodcasts     int `gorm:"not null" json:"total_podcasts"`

	CompletedPosts        int `gorm:"not null" json:"completed_posts"`
	CompletedVideos       int `gorm:"not null" json:"completed_videos"`
	CompletedInfographics int `gorm:"not null" json:"completed_infographics"`
	CompletedNewsletters  int `gorm:"not null" json:"completed_newsletters"`
	CompletedPodcasts     int `gorm:"not null" json:"completed_podcasts"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Client Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Tasks  []Task `gorm:"foreignKey:ProjectID" json:"tasks,omitempty"`
}

// TotalDeliverables sums the quota across all categories.
func (p *Project) TotalDeliverables() int {
	return p.TotalPosts + p.TotalVideos + p.TotalInfographics + p.TotalNewsletters + p.TotalPodcasts
}

// CompletedDeliverables sums the completed counters across all categories.
func (p *Project) CompletedDeliverables() int {
	return p.CompletedPosts + p.CompletedVideos + p.CompletedInfographics + p.CompletedNewsletters + p.CompletedPodcasts
}

// CompletedCounter returns a pointer to the completed counter for a category,
// so roll-up can add or subtract without a switch at every call site.
func (p *Project) CompletedCounter(category TaskCategory) *int {
	switch category {
	case CategoryPost:
		return &p.CompletedPosts
	case CategoryVideo:
		return &p.CompletedVideos
	case CategoryInfographic:
		return &p.CompletedInfographics
	case CategoryNewsletter:
		return &p.CompletedNewsletters
	case CategoryPodcast:
		return &p.CompletedPodcasts
	default:
		return nil
	}
}

// SetTotals copies plan quotas into the per-category totals.
func (p *Project) SetTotals(q PlanQuotas) {
	p.TotalPosts = q.Posts
	p.TotalVideos = q.Videos
	p.TotalInfographics = q.Infographics
	p.TotalNewsletters = q.Newsletters
	p.TotalPodcasts = q.Podcasts
}
