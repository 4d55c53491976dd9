package services

import (
	"github.com/craftline/contentflow-api/internal/models"
	"github.com/craftline/contentflow-api/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory SQLite database with the full schema.
func openTestDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.Client{},
		&models.Project{},
		&models.Task{},
		&models.VideoStage{},
		&models.StaffMember{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// testRoster covers every capability role once, so generation always finds a
// qualified candidate and role assertions stay simple.
var testRoster = []models.StaffMember{
	{ID: "staff-01", Name: "Design One", Email: "design1@test.agency", Role: models.RoleDesigner},
	{ID: "staff-02", Name: "Script One", Email: "script1@test.agency", Role: models.RoleScriptWriter},
	{ID: "staff-03", Name: "Image One", Email: "image1@test.agency", Role: models.RoleImageSpecialist},
	{ID: "staff-04", Name: "Motion One", Email: "motion1@test.agency", Role: models.RoleMotionDesigner},
	{ID: "staff-05", Name: "Voice One", Email: "voice1@test.agency", Role: models.RoleVoiceSpecialist},
	{ID: "staff-06", Name: "Editor One", Email: "editor1@test.agency", Role: models.RoleVideoEditor},
}

// testEnv bundles the repositories and services most suites need.
type testEnv struct {
	db          *gorm.DB
	clientRepo  repository.ClientRepository
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
	stageRepo   repository.StageRepository
	staffRepo   repository.StaffRepository

	clients  *ClientService
	tasks    *TaskService
	stages   *StageService
	progress *ProgressService
}

// newTestEnv wires services over a fresh database with the roster seeded.
// The round-robin picker keeps assignment deterministic.
func newTestEnv(db *gorm.DB) (*testEnv, error) {
	roster := make([]models.StaffMember, len(testRoster))
	copy(roster, testRoster)
	if err := db.Create(&roster).Error; err != nil {
		return nil, err
	}

	env := &testEnv{
		db:          db,
		clientRepo:  repository.NewClientRepository(db),
		projectRepo: repository.NewProjectRepository(db),
		taskRepo:    repository.NewTaskRepository(db),
		stageRepo:   repository.NewStageRepository(db),
		staffRepo:   repository.NewStaffRepository(db),
	}
	env.clients = NewClientService(env.clientRepo, env.projectRepo, env.staffRepo, NewRoundRobinPicker())
	env.tasks = NewTaskService(env.taskRepo, env.projectRepo)
	env.stages = NewStageService(env.stageRepo, env.taskRepo, env.projectRepo)
	env.progress = NewProgressService(env.clientRepo, env.projectRepo, env.taskRepo, env.stageRepo)

	return env, nil
}

// createClient is a shorthand for seeding one client in tests.
func (env *testEnv) createClient(email string, plan models.PlanTier) (*models.Client, error) {
	return env.clients.CreateClient(CreateClientInput{
		BusinessName: "Test Business",
		OwnerName:    "Test Owner",
		Email:        email,
		Phone:        "5550001111",
		Plan:         plan,
		CreatedBy:    "manager@test.agency",
	})
}

// firstVideoStages returns the ordered stages of the client's first video task.
func (env *testEnv) firstVideoStages(clientID string) (*models.Task, []models.VideoStage, error) {
	project, err := env.clients.GetCurrentProject(clientID)
	if err != nil {
		return nil, nil, err
	}
	tasks, err := env.tasks.ListTasksByProject(project.ID)
	if err != nil {
		return nil, nil, err
	}
	for i := range tasks {
		if tasks[i].Category == models.CategoryVideo {
			stages, err := env.stages.ListStagesByTask(tasks[i].ID)
			if err != nil {
				return nil, nil, err
			}
			return &tasks[i], stages, nil
		}
	}
	return nil, nil, nil
}
