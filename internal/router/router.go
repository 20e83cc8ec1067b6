package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/planwise-dev/planwise-api/internal/auth"
	"github.com/planwise-dev/planwise-api/internal/config"
	"github.com/planwise-dev/planwise-api/internal/handlers"
	"github.com/planwise-dev/planwise-api/internal/middleware"
	"github.com/planwise-dev/planwise-api/internal/repository"
)

// Deps bundles everything the route table needs.
type Deps struct {
	Tokens        *auth.TokenManager
	Auth          *handlers.AuthHandler
	Users         *handlers.UserHandler
	Tasks         *handlers.TaskHandler
	Projects      *handlers.ProjectHandler
	Collaborators *handlers.CollaboratorHandler

	// Repositories the access middleware loads entities through.
	ProjectRepo repository.ProjectRepository
	TaskRepo    repository.TaskRepository
}

// New assembles the engine: CORS, liveness probes, and the
// authenticated API surface.
func New(cfg *config.Config, deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	requireAuth := middleware.RequireAuth(deps.Tokens)

	r.GET("/", handlers.Root)
	r.GET("/health", handlers.HealthCheck)

	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/signup", deps.Auth.Signup)
		authRoutes.POST("/login", deps.Auth.Login)
		authRoutes.GET("/me", requireAuth, deps.Auth.GetCurrentUser)
	}

	users := r.Group("/users", requireAuth)
	{
		users.GET("", deps.Users.ListUsers)
		users.GET("/:id", deps.Users.GetUser)
		users.PATCH("/:id", deps.Users.UpdateUser)
		users.DELETE("/:id", deps.Users.DeleteUser)
	}

	tasks := r.Group("/tasks", requireAuth)
	{
		tasks.GET("", deps.Tasks.ListTasks)
		tasks.POST("", deps.Tasks.CreateTask)
		taskAccess := middleware.RequireTaskAccess(deps.TaskRepo)
		tasks.GET("/:id", taskAccess, deps.Tasks.GetTask)
		tasks.PATCH("/:id", taskAccess, deps.Tasks.UpdateTask)
		tasks.DELETE("/:id", taskAccess, deps.Tasks.DeleteTask)
	}

	projects := r.Group("/projects", requireAuth)
	{
		projects.GET("", deps.Projects.ListProjects)
		projects.POST("", deps.Projects.CreateProject)
		projectAccess := middleware.RequireProjectAccess(deps.ProjectRepo)
		projects.GET("/:id", projectAccess, deps.Projects.GetProject)
		projects.PATCH("/:id", projectAccess, deps.Projects.UpdateProject)
		projects.DELETE("/:id", projectAccess, deps.Projects.DeleteProject)
	}

	collaborators := r.Group("/project-collaborators", requireAuth)
	{
		collaborators.GET("", deps.Collaborators.ListCollaborators)
		collaborators.POST("", deps.Collaborators.CreateCollaborator)
		collaborators.GET("/:id", deps.Collaborators.GetCollaborator)
		collaborators.PATCH("/:id", deps.Collaborators.UpdateCollaborator)
		collaborators.DELETE("/:id", deps.Collaborators.DeleteCollaborator)
	}

	return r
}
