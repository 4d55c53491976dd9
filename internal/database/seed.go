package database

import (
	"fmt"

	"github.com/craftline/contentflow-api/internal/models"
	"github.com/rs/zerolog/log"
)

// staffRoster is the fixed production-team roster. Members are immutable and
// carry exactly one capability role; ids are stable so reseeding is a no-op.
var staffRoster = []models.StaffMember{
	{ID: "staff-01", Name: "Priya Sharma", Email: "priya@craftline.agency", Role: models.RoleDesigner},
	{ID: "staff-02", Name: "Marcus Webb", Email: "marcus@craftline.agency", Role: models.RoleDesigner},
	{ID: "staff-03", Name: "Elena Petrova", Email: "elena@craftline.agency", Role: models.RoleScriptWriter},
	{ID: "staff-04", Name: "Tom Okafor", Email: "tom@craftline.agency", Role: models.RoleScriptWriter},
	{ID: "staff-05", Name: "Yuki Tanaka", Email: "yuki@craftline.agency", Role: models.RoleImageSpecialist},
	{ID: "staff-06", Name: "Dana Lindqvist", Email: "dana@craftline.agency", Role: models.RoleMotionDesigner},
	{ID: "staff-07", Name: "Sam Reyes", Email: "sam@craftline.agency", Role: models.RoleVoiceSpecialist},
	{ID: "staff-08", Name: "Ines Moreau", Email: "ines@craftline.agency", Role: models.RoleVideoEditor},
	{ID: "staff-09", Name: "Arjun Mehta", Email: "arjun@craftline.agency", Role: models.RoleVideoEditor},
}

// SeedStaff inserts the roster if it is not present yet.
func SeedStaff() error {
	var count int64
	if err := DB.Model(&models.StaffMember{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count staff: %w", err)
	}
	if count > 0 {
		return nil
	}

	roster := make([]models.StaffMember, len(staffRoster))
	copy(roster, staffRoster)
	if err := DB.Create(&roster).Error; err != nil {
		return fmt.Errorf("failed to seed staff roster: %w", err)
	}

	log.Info().Int("members", len(roster)).Msg("seeded staff roster")
	return nil
}
