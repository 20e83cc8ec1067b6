package middleware

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/planwise-dev/planwise-api/internal/access"
	"github.com/planwise-dev/planwise-api/internal/apperrors"
	"github.com/planwise-dev/planwise-api/internal/repository"
	"gorm.io/gorm"
)

// ContextProjectKey is where the loaded project lives in the request context.
const ContextProjectKey = "project"

// RequireProjectAccess loads the project from the URL parameter and
// denies with 403 unless the current identity is the owner or a
// collaborator. An absent project is 404; an existing but inaccessible
// one is deliberately 403.
func RequireProjectAccess(projects repository.ProjectRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apperrors.BadRequest(c, "Invalid project ID")
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apperrors.Unauthenticated(c, "")
			c.Abort()
			return
		}

		project, err := projects.FindByID(uint(projectID))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.NotFound(c, "Project not found")
			} else {
				apperrors.InternalError(c, "Failed to load project")
			}
			c.Abort()
			return
		}

		if !access.CanAccessProject(userID, project) {
			apperrors.Forbidden(c, "Access denied")
			c.Abort()
			return
		}

		c.Set(ContextProjectKey, project)
		c.Next()
	}
}
