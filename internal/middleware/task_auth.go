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

// ContextTaskKey is where the loaded task lives in the request context.
const ContextTaskKey = "task"

// RequireTaskAccess loads the task from the URL parameter and denies
// with 403 unless the current identity is its assignee.
func RequireTaskAccess(tasks repository.TaskRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apperrors.BadRequest(c, "Invalid task ID")
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apperrors.Unauthenticated(c, "")
			c.Abort()
			return
		}

		task, err := tasks.FindByID(uint(taskID))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.NotFound(c, "Task not found")
			} else {
				apperrors.InternalError(c, "Failed to load task")
			}
			c.Abort()
			return
		}

		if !access.CanAccessTask(userID, task) {
			apperrors.Forbidden(c, "Access denied")
			c.Abort()
			return
		}

		c.Set(ContextTaskKey, task)
		c.Next()
	}
}
