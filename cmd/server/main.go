package main

import (
	"os"

	"github.com/craftline/contentflow-api/internal/config"
	"github.com/craftline/contentflow-api/internal/database"
	"github.com/craftline/contentflow-api/internal/handlers"
	"github.com/craftline/contentflow-api/internal/middleware"
	"github.com/craftline/contentflow-api/internal/repository"
	"github.com/craftline/contentflow-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run migrations and seed the staff roster
	if err := database.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	if err := database.SeedStaff(); err != nil {
		log.Fatal().Err(err).Msg("failed to seed staff roster")
	}

	db := database.GetDB()

	// Repositories
	clientRepo := repository.NewClientRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	stageRepo := repository.NewStageRepository(db)
	staffRepo := repository.NewStaffRepository(db)

	// Services
	clientService := services.NewClientService(clientRepo, projectRepo, staffRepo, services.NewRandomPicker())
	taskService := services.NewTaskService(taskRepo, projectRepo)
	stageService := services.NewStageService(stageRepo, taskRepo, projectRepo)
	progressService := services.NewProgressService(clientRepo, projectRepo, taskRepo, stageRepo)
	snapshotService := services.NewSnapshotService(db)

	var aiService *services.AIService
	if cfg.OpenAIAPIKey != "" {
		aiService = services.NewAIService(cfg.OpenAIAPIKey)
	}

	if cfg.SeedDemo {
		seeder := services.NewSeeder(clientRepo, clientService, taskService, stageService)
		if err := seeder.SeedDemo(); err != nil {
			log.Fatal().Err(err).Msg("failed to seed demo data")
		}
	}

	// Handlers
	clientHandler := handlers.NewClientHandler(clientService, progressService)
	taskHandler := handlers.NewTaskHandler(taskService, stageService, progressService, clientService, aiService)
	stageHandler := handlers.NewStageHandler(stageService)
	staffHandler := handlers.NewStaffHandler(staffRepo, progressService)
	snapshotHandler := handlers.NewSnapshotHandler(snapshotService)

	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Contentflow API is running",
		})
	})

	// API routes
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

	// Start server
	log.Info().Str("addr", cfg.ListenAddr).Msg("server starting")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
