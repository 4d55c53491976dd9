package repository

import (
	"github.com/craftline/contentflow-api/internal/models"
	"github.com/craftline/contentflow-api/internal/utils"
)

// ClientRepository defines the interface for client data access
type ClientRepository interface {
	// CreateWithPlan persists a client together with its generated project,
	// tasks and video stages in a single transaction. Either the whole graph
	// commits or none of it does.
	CreateWithPlan(client *models.Client, project *models.Project, tasks []models.Task, stages []models.VideoStage) error

	// FindByID finds a client by ID with optional preloading
	FindByID(id string, preload ...string) (*models.Client, error)

	// FindByEmail finds a client by its unique email
	FindByEmail(email string) (*models.Client, error)

	// List returns all clients, newest first
	List() ([]models.Client, error)

	// ListPaginated returns one page of clients, newest first, with the
	// total row count
	ListPaginated(params utils.PaginationParams) ([]models.Client, int64, error)

	// Count returns the number of clients
	Count() (int64, error)
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// FindByID finds a project by ID
	FindByID(id string) (*models.Project, error)

	// FindByClientAndPeriod finds the project for a client and period key
	FindByClientAndPeriod(clientID, period string) (*models.Project, error)

	// ListByClient returns all projects of a client, newest period first
	ListByClient(clientID string) ([]models.Project, error)

	// Save persists changes to a project
	Save(project *models.Project) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// FindByID finds a task by ID with optional preloading
	FindByID(id string, preload ...string) (*models.Task, error)

	// ListByProject returns all tasks of a project in generation order
	ListByProject(projectID string) ([]models.Task, error)

	// ListByAssignee returns all tasks assigned to a staff email
	ListByAssignee(email string) ([]models.Task, error)

	// CountByStatus returns the number of tasks holding a status
	CountByStatus(status models.WorkStatus) (int64, error)

	// Save persists changes to a task
	Save(task *models.Task) error

	// SaveWithProject persists a task change and its project counter roll-up
	// in a single transaction.
	SaveWithProject(task *models.Task, project *models.Project) error
}

// StageRepository defines the interface for video stage data access
type StageRepository interface {
	// FindByID finds a stage by ID
	FindByID(id string) (*models.VideoStage, error)

	// ListByTask returns a task's stages sorted ascending by stage number
	ListByTask(taskID string) ([]models.VideoStage, error)

	// ListByAssignee returns all stages assigned to a staff email
	ListByAssignee(email string) ([]models.VideoStage, error)

	// Save persists changes to a stage
	Save(stage *models.VideoStage) error

	// SaveCascade persists a stage change together with the parent task and
	// project roll-up in a single transaction. Task and project may be nil
	// when the change does not cascade.
	SaveCascade(stage *models.VideoStage, task *models.Task, project *models.Project) error
}

// StaffRepository defines the interface for the staff roster
type StaffRepository interface {
	// List returns the whole roster in seeding order
	List() ([]models.StaffMember, error)

	// ListByRole returns roster members holding a role, in seeding order
	ListByRole(role models.StaffRole) ([]models.StaffMember, error)
}
