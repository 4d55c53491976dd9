package models

import (
	"time"

	"gorm.io/gorm"
)

// Task is one deliverable unit within a project. Video-category tasks own a
// five-stage pipeline and only complete through the stage cascade; all other
// categories complete directly through task updates.
type Task struct {
	ID             string         `gorm:"type:varchar(36);primarykey" json:"id"`
	ProjectID      string         `gorm:"type:varchar(36);not null;index" json:"project_id"`
	ClientID       string         `gorm:"type:varchar(36);not null;index" json:"client_id"`
	Category       TaskCategory   `gorm:"type:varchar(20);not null" json:"category"`
	// Seq is the task's position in its project's generation order. Titles
	// are not sortable ("Post #10" < "Post #2" lexicographically).
	Seq            int            `gorm:"not null" json:"seq"`
	Title          string         `gorm:"type:varchar(255);not null" json:"title"`
	Status         WorkStatus     `gorm:"type:varchar(20);not null;default:'not-started'" json:"status"`
	AssignedTo     *string        `gorm:"type:varchar(255);index" json:"assigned_to,omitempty"`
	AssignedToName *string        `gorm:"type:varchar(255)" json:"assigned_to_name,omitempty"`
	DeliveryDate   *time.Time     `json:"delivery_date,omitempty"`
	CompletedAt    *time.Time     `json:"completed_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Project Project      `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Stages  []VideoStage `gorm:"foreignKey:TaskID" json:"stages,omitempty"`
}
