package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/craftline/contentflow-api/internal/middleware"
	"github.com/craftline/contentflow-api/internal/models"
	"github.com/craftline/contentflow-api/internal/repository"
	"github.com/craftline/contentflow-api/internal/services"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testActor = "manager@test.agency"

// handlerTestRoster covers every capability role once.
var handlerTestRoster = []models.StaffMember{
	{ID: "staff-01", Name: "Design One", Email: "design1@test.agency", Role: models.RoleDesigner},
	{ID: "staff-02", Name: "Script One", Email: "script1@test.agency", Role: models.RoleScriptWriter},
	{ID: "staff-03", Name: "Image One", Email: "image1@test.agency", Role: models.RoleImageSpecialist},
	{ID: "staff-04", Name: "Motion One", Email: "motion1@test.agency", Role: models.RoleMotionDesigner},
	{ID: "staff-05", Name: "Voice One", Email: "voice1@test.agency", Role: models.RoleVoiceSpecialist},
	{ID: "staff-06", Name: "Editor One", Email: "editor1@test.agency", Role: models.RoleVideoEditor},
}

// newTestRouter builds the full API router over an in-memory SQLite database,
// wired the same way the server entrypoint wires it, without an AI service.
func newTestRouter() (*gorm.DB, *gin.Engine, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		return nil, nil, err
	}

	err = db.AutoMigrate(
		&models.Client{},
		&models.Project{},
		&models.Task{},
		&models.VideoStage{},
		&models.StaffMember{},
	)
	if err != nil {
		return nil, nil, err
	}

	roster := make([]models.StaffMember, len(handlerTestRoster))
	copy(roster, handlerTestRoster)
	if err := db.Create(&roster).Error; err != nil {
		return nil, nil, err
	}

	clientRepo := repository.NewClientRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	stageRepo := repository.NewStageRepository(db)
	staffRepo := repository.NewStaffRepository(db)

	clientService := services.NewClientService(clientRepo, projectRepo, staffRepo, services.NewRoundRobinPicker())
	taskService := services.NewTaskService(taskRepo, projectRepo)
	stageService := services.NewStageService(stageRepo, taskRepo, projectRepo)
	progressService := services.NewProgressService(clientRepo, projectRepo, taskRepo, stageRepo)
	snapshotService := services.NewSnapshotService(db)

	clientHandler := NewClientHandler(clientService, progressService)
	taskHandler := NewTaskHandler(taskService, stageService, progressService, clientService, nil)
	stageHandler := NewStageHandler(stageService)
	staffHandler := NewStaffHandler(staffRepo, progressService)
	snapshotHandler := NewSnapshotHandler(snapshotService)

	gin.SetMode(gin.TestMode)
	r := gin.New()

	api := r.Group("/api")
	api.Use(middleware.RequireActor())
	{
		clients := api.Group("/clients")
		{
			clients.POST("", clientHandler.CreateClient)
			clients.GET("", clientHandler.ListClients)
			clients.GET("/:id", clientHandler.GetClient)
			clients.GET("/:id/project", clientHandler.GetCurrentProject)
			clients.GET("/:id/projects", clientHandler.ListClientProjects)
			clients.GET("/:id/progress", clientHandler.GetClientProgress)
		}

		api.GET("/projects/:id/tasks", taskHandler.ListProjectTasks)

		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.PATCH("/:id", taskHandler.UpdateTask)
			tasks.GET("/:id/progress", taskHandler.GetTaskProgress)
			tasks.GET("/:id/stages", taskHandler.ListTaskStages)
			tasks.POST("/:id/script-brief", taskHandler.GenerateScriptBrief)
		}

		stages := api.Group("/stages")
		{
			stages.GET("", stageHandler.ListStages)
			stages.PATCH("/:id", stageHandler.UpdateStage)
		}

		api.GET("/staff", staffHandler.ListStaff)
		api.GET("/overview", staffHandler.GetOverview)

		api.GET("/snapshot", snapshotHandler.ExportSnapshot)
		api.PUT("/snapshot", snapshotHandler.ImportSnapshot)
	}

	return db, r, nil
}

// performRequest executes an HTTP request against the router with the acting
// identity header set.
func performRequest(r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequest(method, path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Actor-Email", testActor)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w, nil
}

// performRaw executes a prebuilt request without any header defaults.
func performRaw(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
