package services

import (
	"errors"
	"fmt"

	"github.com/craftline/contentflow-api/internal/models"
	"github.com/craftline/contentflow-api/internal/repository"
	"github.com/craftline/contentflow-api/internal/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrClientNotFound       = errors.New("client not found")
	ErrProjectNotFound      = errors.New("project not found")
	ErrEmailTaken           = errors.New("a client with this email already exists")
	ErrUnknownPlan          = errors.New("unknown plan tier")
	ErrBusinessNameRequired = errors.New("business name is required")
	ErrEmailRequired        = errors.New("email is required")
)

// ClientService owns client creation and lookups. Creating a client expands
// its plan into the current month's project, one task per quota unit, and the
// five-stage pipeline behind every video task, all committed atomically.
type ClientService struct {
	clientRepo  repository.ClientRepository
	projectRepo repository.ProjectRepository
	staffRepo   repository.StaffRepository
	picker      AssigneePicker
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo repository.ClientRepository, projectRepo repository.ProjectRepository, staffRepo repository.StaffRepository, picker AssigneePicker) *ClientService {
	return &ClientService{
		clientRepo:  clientRepo,
		projectRepo: projectRepo,
		staffRepo:   staffRepo,
		picker:      picker,
	}
}

// CreateClientInput represents input for creating a client
type CreateClientInput struct {
	BusinessName string
	OwnerName    string
	Email        string
	Phone        string
	Plan         models.PlanTier
	MSAFile      string
	AssetsFile   string
	CreatedBy    string
}

// CreateClient validates the input, generates the plan's deliverable set and
// persists the whole graph in one transaction.
func (s *ClientService) CreateClient(input CreateClientInput) (*models.Client, error) {
	if input.BusinessName == "" {
		return nil, ErrBusinessNameRequired
	}
	if input.Email == "" {
		return nil, ErrEmailRequired
	}

	quotas, err := models.QuotasForPlan(input.Plan)
	if err != nil {
		return nil, ErrUnknownPlan
	}

	storeMu.Lock()
	defer storeMu.Unlock()

	if _, err := s.clientRepo.FindByEmail(input.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check client email: %w", err)
	}

	client := &models.Client{
		ID:           uuid.NewString(),
		BusinessName: input.BusinessName,
		OwnerName:    input.OwnerName,
		Email:        input.Email,
		Phone:        input.Phone,
		Plan:         input.Plan,
		MSAFile:      input.MSAFile,
		AssetsFile:   input.AssetsFile,
		CreatedBy:    input.CreatedBy,
	}

	project, tasks, stages := s.generatePlan(client, quotas)

	if err := s.clientRepo.CreateWithPlan(client, project, tasks, stages); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// GetClient returns a client by ID
func (s *ClientService) GetClient(id string) (*models.Client, error) {
	client, err := s.clientRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	return client, nil
}

// GetClientByEmail returns a client by its unique email
func (s *ClientService) GetClientByEmail(email string) (*models.Client, error) {
	client, err := s.clientRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	return client, nil
}

// ListClients returns all clients, newest first
func (s *ClientService) ListClients() ([]models.Client, error) {
	return s.clientRepo.List()
}

// ListClientsPaginated returns one page of clients with the total row count
func (s *ClientService) ListClientsPaginated(params utils.PaginationParams) ([]models.Client, int64, error) {
	return s.clientRepo.ListPaginated(params)
}

// ListProjects returns a client's project history, newest period first.
func (s *ClientService) ListProjects(clientID string) ([]models.Project, error) {
	return s.projectRepo.ListByClient(clientID)
}

// GetCurrentProject returns the client's project for the present month.
func (s *ClientService) GetCurrentProject(clientID string) (*models.Project, error) {
	project, err := s.projectRepo.FindByClientAndPeriod(clientID, utils.CurrentPeriod())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find current project: %w", err)
	}
	return project, nil
}
