package services

import (
	"fmt"
	"time"

	"github.com/craftline/contentflow-api/internal/models"
	"github.com/craftline/contentflow-api/internal/repository"
	"github.com/rs/zerolog/log"
)

// Seeder populates a demo agency through the regular services, so the demo
// data exercises the generator, the dependency gate and the roll-up exactly
// like production traffic would.
type Seeder struct {
	clientRepo repository.ClientRepository
	clients    *ClientService
	tasks      *TaskService
	stages     *StageService
}

// NewSeeder creates a new Seeder
func NewSeeder(clientRepo repository.ClientRepository, clients *ClientService, tasks *TaskService, stages *StageService) *Seeder {
	return &Seeder{
		clientRepo: clientRepo,
		clients:    clients,
		tasks:      tasks,
		stages:     stages,
	}
}

// SeedDemo creates the sample clients when the store is empty.
func (s *Seeder) SeedDemo() error {
	count, err := s.clientRepo.Count()
	if err != nil {
		return fmt.Errorf("failed to count clients: %w", err)
	}
	if count > 0 {
		return nil
	}

	if err := s.seedRajsRestaurant(); err != nil {
		return err
	}

	extras := []CreateClientInput{
		{
			BusinessName: "Tech Innovations Inc",
			OwnerName:    "Alice Chen",
			Email:        "alice@techinnovations.com",
			Phone:        "5551234567",
			Plan:         models.PlanPremium,
			MSAFile:      "msa-tech-innovations.pdf",
			AssetsFile:   "assets-tech-innovations.zip",
			CreatedBy:    "manager@craftline.agency",
		},
		{
			BusinessName: "Green Garden Cafe",
			OwnerName:    "Bob Wilson",
			Email:        "bob@greengarden.com",
			Phone:        "5559876543",
			Plan:         models.PlanBasic,
			MSAFile:      "msa-green-garden.pdf",
			AssetsFile:   "assets-green-garden.zip",
			CreatedBy:    "manager@craftline.agency",
		},
		{
			BusinessName: "Fitness First Gym",
			OwnerName:    "Carol Martinez",
			Email:        "carol@fitnessfirst.com",
			Phone:        "5555551234",
			Plan:         models.PlanStandard,
			MSAFile:      "msa-fitness-first.pdf",
			AssetsFile:   "assets-fitness-first.zip",
			CreatedBy:    "manager@craftline.agency",
		},
	}

	for i, input := range extras {
		client, err := s.clients.CreateClient(input)
		if err != nil {
			return fmt.Errorf("failed to seed client %s: %w", input.BusinessName, err)
		}
		// A little completed work per client, sized by position for variety.
		if err := s.completePosts(client.ID, i+2); err != nil {
			return err
		}
	}

	log.Info().Msg("seeded demo agency data")
	return nil
}

// seedRajsRestaurant builds the showcase client: partially delivered posts
// and a video pipeline mid-flight.
func (s *Seeder) seedRajsRestaurant() error {
	client, err := s.clients.CreateClient(CreateClientInput{
		BusinessName: "Raj's Restaurant",
		OwnerName:    "Raj Kumar",
		Email:        "raj@restaurant.com",
		Phone:        "9876543210",
		Plan:         models.PlanStandard,
		MSAFile:      "msa-raj-restaurant.pdf",
		AssetsFile:   "assets-raj-restaurant.zip",
		CreatedBy:    "manager@craftline.agency",
	})
	if err != nil {
		return fmt.Errorf("failed to seed demo client: %w", err)
	}

	project, err := s.clients.GetCurrentProject(client.ID)
	if err != nil {
		return err
	}
	tasks, err := s.tasks.ListTasksByProject(project.ID)
	if err != nil {
		return err
	}

	var posts, videos []models.Task
	for _, task := range tasks {
		switch task.Category {
		case models.CategoryPost:
			posts = append(posts, task)
		case models.CategoryVideo:
			videos = append(videos, task)
		}
	}

	complete := models.StatusComplete
	inProgress := models.StatusInProgress

	for i, task := range posts {
		switch {
		case i < 5:
			date := daysFromNow(-(10 - i*2))
			if _, err := s.tasks.UpdateTask(task.ID, UpdateTaskInput{Status: &complete, DeliveryDate: &date}); err != nil {
				return fmt.Errorf("failed to seed post: %w", err)
			}
		case i < 8:
			date := daysFromNow(i - 4)
			if _, err := s.tasks.UpdateTask(task.ID, UpdateTaskInput{Status: &inProgress, DeliveryDate: &date}); err != nil {
				return fmt.Errorf("failed to seed post: %w", err)
			}
		default:
			date := daysFromNow(5 + (i-8)*2)
			if _, err := s.tasks.UpdateTask(task.ID, UpdateTaskInput{DeliveryDate: &date}); err != nil {
				return fmt.Errorf("failed to seed post: %w", err)
			}
		}
	}

	if len(videos) == 0 {
		return nil
	}

	stages, err := s.stages.ListStagesByTask(videos[0].ID)
	if err != nil {
		return err
	}
	for i, stage := range stages {
		switch {
		case i < 3:
			date := daysFromNow(-(6 - i))
			if _, err := s.stages.UpdateStage(stage.ID, UpdateStageInput{Status: &complete, DeliveryDate: &date}); err != nil {
				return fmt.Errorf("failed to seed stage: %w", err)
			}
		case i == 3:
			date := daysFromNow(2)
			if _, err := s.stages.UpdateStage(stage.ID, UpdateStageInput{Status: &inProgress, DeliveryDate: &date}); err != nil {
				return fmt.Errorf("failed to seed stage: %w", err)
			}
		case i == 4:
			date := daysFromNow(4)
			if _, err := s.stages.UpdateStage(stage.ID, UpdateStageInput{DeliveryDate: &date}); err != nil {
				return fmt.Errorf("failed to seed stage: %w", err)
			}
		}
	}

	return nil
}

// completePosts marks the first n post tasks of a client's current project
// complete.
func (s *Seeder) completePosts(clientID string, n int) error {
	project, err := s.clients.GetCurrentProject(clientID)
	if err != nil {
		return err
	}
	tasks, err := s.tasks.ListTasksByProject(project.ID)
	if err != nil {
		return err
	}

	complete := models.StatusComplete
	done := 0
	for _, task := range tasks {
		if task.Category != models.CategoryPost || done >= n {
			continue
		}
		if _, err := s.tasks.UpdateTask(task.ID, UpdateTaskInput{Status: &complete}); err != nil {
			return fmt.Errorf("failed to seed post: %w", err)
		}
		done++
	}
	return nil
}

func daysFromNow(days int) time.Time {
	return time.Now().AddDate(0, 0, days)
}
