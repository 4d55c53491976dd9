package models

import (
	"time"

	"gorm.io/gorm"
)

type StageName string

const (
	StageScript StageName = "script"
	StageImages StageName = "images"
	StageMotion StageName = "motion"
	StageVoice  StageName = "voice"
	StageEdit   StageName = "edit"
)

// StageNames is the fixed production order of a video pipeline. StageNumber
// (1-based) is the authoritative ordering key, not slice position.
var StageNames = []StageName{StageScript, StageImages, StageMotion, StageVoice, StageEdit}

// StageRoleFor maps a stage to the staff role qualified to work it.
func StageRoleFor(name StageName) StaffRole {
	switch name {
	case StageScript:
		return RoleScriptWriter
	case StageImages:
		return RoleImageSpecialist
	case StageMotion:
		return RoleMotionDesigner
	case StageVoice:
		return RoleVoiceSpecialist
	case StageEdit:
		return RoleVideoEditor
	default:
		return ""
	}
}

// VideoStage is one of exactly five ordered sub-steps of a video task.
// DependsOnID points at the immediately preceding stage and is nil only for
// stage 1; a stage may not move into in-progress or complete while its
// predecessor is incomplete.
type VideoStage struct {
	ID             string         `gorm:"type:varchar(36);primarykey" json:"id"`
	TaskID         string         `gorm:"type:varchar(36);not null;index" json:"task_id"`
	StageNumber    int            `gorm:"not null" json:"stage_number"`
	StageName      StageName      `gorm:"type:varchar(20);not null" json:"stage_name"`
	Status         WorkStatus     `gorm:"type:varchar(20);not null;default:'not-started'" json:"status"`
	DependsOnID    *string        `gorm:"type:varchar(36)" json:"depends_on,omitempty"`
	AssignedTo     *string        `gorm:"type:varchar(255);index" json:"assigned_to,omitempty"`
	AssignedToName *string        `gorm:"type:varchar(255)" json:"assigned_to_name,omitempty"`
	DeliveryDate   *time.Time     `json:"delivery_date,omitempty"`
	CompletedAt    *time.Time     `json:"completed_at,omitempty"`
	Notes          string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Task Task `gorm:"foreignKey:TaskID" json:"task,omitempty"`
}
