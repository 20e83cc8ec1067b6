package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/planwise-dev/planwise-api/internal/auth"
	"github.com/planwise-dev/planwise-api/internal/config"
	"github.com/planwise-dev/planwise-api/internal/database"
	"github.com/planwise-dev/planwise-api/internal/handlers"
	"github.com/planwise-dev/planwise-api/internal/repository"
	"github.com/planwise-dev/planwise-api/internal/router"
	"github.com/planwise-dev/planwise-api/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := config.Load()

	gin.SetMode(cfg.GinMode)

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	collabRepo := repository.NewCollaboratorRepository(db)

	tokens := auth.NewTokenManager(cfg.JWTSecret, auth.DefaultTokenTTL)
	authService := services.NewAuthService(userRepo, tokens)

	r := router.New(cfg, router.Deps{
		Tokens:        tokens,
		Auth:          handlers.NewAuthHandler(authService),
		Users:         handlers.NewUserHandler(userRepo),
		Tasks:         handlers.NewTaskHandler(taskRepo),
		Projects:      handlers.NewProjectHandler(projectRepo),
		Collaborators: handlers.NewCollaboratorHandler(collabRepo),
		ProjectRepo:   projectRepo,
		TaskRepo:      taskRepo,
	})

	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
