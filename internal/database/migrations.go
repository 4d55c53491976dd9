package database

import (
	"fmt"

	"github.com/craftline/contentflow-api/internal/models"
	"github.com/rs/zerolog/log"
)

func Migrate() error {
	log.Info().Msg("running database migrations")
	err := DB.AutoMigrate(
		&models.Client{},
		&models.Project{},
		&models.Task{},
		&models.VideoStage{},
		&models.StaffMember{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Info().Msg("database migrations completed")
	return nil
}
