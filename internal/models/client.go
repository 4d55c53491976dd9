package models

import (
	"time"

	"gorm.io/gorm"
)

type Client struct {
	ID           string         `gorm:"type:varchar(36);primarykey" json:"id"`
	BusinessName string         `gorm:"type:varchar(255);not null" json:"business_name"`
	OwnerName    string         `gorm:"type:varchar(255);not null" json:"owner_name"`
	Email        string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone        string         `gorm:"type:varchar(30)" json:"phone"`
	Plan         PlanTier       `gorm:"type:varchar(20);not null" json:"plan"`
	MSAFile      string         `gorm:"type:varchar(255)" json:"msa_file,omitempty"`
	AssetsFile   string         `gorm:"type:varchar(255)" json:"assets_file,omitempty"`
	CreatedBy    string         `gorm:"type:varchar(255)" json:"created_by"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Projects []Project `gorm:"foreignKey:ClientID" json:"projects,omitempty"`
}
