package models

import "time"

type StaffRole string

const (
	RoleDesigner        StaffRole = "designer"
	RoleScriptWriter    StaffRole = "scriptWriter"
	RoleImageSpecialist StaffRole = "imageSpecialist"
	RoleMotionDesigner  StaffRole = "motionDesigner"
	RoleVoiceSpecialist StaffRole = "voiceSpecialist"
	RoleVideoEditor     StaffRole = "videoEditor"
	RoleManager         StaffRole = "manager"
)

// StaffMember is one row of the production-team roster. Records are seeded at
// startup and treated as immutable; each member carries exactly one role.
type StaffMember struct {
	ID        string    `gorm:"type:varchar(36);primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Role      StaffRole `gorm:"type:varchar(30);not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
