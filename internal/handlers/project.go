package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/planwise-dev/planwise-api/internal/apperrors"
	"github.com/planwise-dev/planwise-api/internal/middleware"
	"github.com/planwise-dev/planwise-api/internal/models"
	"github.com/planwise-dev/planwise-api/internal/repository"
)

// ProjectHandler serves the /projects routes.
type ProjectHandler struct {
	projects repository.ProjectRepository
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projects repository.ProjectRepository) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// ListProjects returns projects the current identity owns or
// collaborates on.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthenticated(c, "Not authenticated")
		return
	}

	projects, err := h.projects.ListForUser(userID)
	if err != nil {
		apperrors.InternalError(c, "Failed to fetch projects")
		return
	}

	c.JSON(http.StatusOK, projects)
}

// CreateProject creates a project owned by the current identity.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthenticated(c, "Not authenticated")
		return
	}

	type CreateProjectRequest struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Title is required")
		return
	}

	project := models.Project{
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     userID,
	}

	if err := h.projects.Create(&project); err != nil {
		respondRepoError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// GetProject returns the project loaded by the access middleware.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, ok := projectFromContext(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, project)
}

// UpdateProject applies a partial update to the project loaded by the
// access middleware.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	project, ok := projectFromContext(c)
	if !ok {
		return
	}

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		apperrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.projects.Update(project, fields); err != nil {
		respondRepoError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject removes the project loaded by the access middleware,
// cascading to its tasks and collaborator records.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	project, ok := projectFromContext(c)
	if !ok {
		return
	}

	if err := h.projects.Delete(project.ID); err != nil {
		respondRepoError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func projectFromContext(c *gin.Context) (*models.Project, bool) {
	raw, exists := c.Get(middleware.ContextProjectKey)
	if !exists {
		apperrors.InternalError(c, "Project not found in context")
		return nil, false
	}

	project, ok := raw.(*models.Project)
	if !ok {
		apperrors.InternalError(c, "Invalid project data")
		return nil, false
	}
	return project, true
}
