package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/planwise-dev/planwise-api/internal/apperrors"
	"github.com/planwise-dev/planwise-api/internal/middleware"
	"github.com/planwise-dev/planwise-api/internal/models"
	"github.com/planwise-dev/planwise-api/internal/repository"
)

// TaskHandler serves the /tasks routes.
type TaskHandler struct {
	tasks repository.TaskRepository
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(tasks repository.TaskRepository) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// ListTasks returns the tasks assigned to the current identity.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthenticated(c, "Not authenticated")
		return
	}

	tasks, err := h.tasks.ListByAssignee(userID)
	if err != nil {
		apperrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// CreateTask creates a task assigned to the current identity. Status
// defaults to pending and priority to medium when absent.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthenticated(c, "Not authenticated")
		return
	}

	type CreateTaskRequest struct {
		Title       string  `json:"title" binding:"required"`
		Description string  `json:"description"`
		Status      string  `json:"status"`
		Priority    string  `json:"priority"`
		DueDate     *string `json:"due_date"`
		ProjectID   *uint   `json:"project_id"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Title is required")
		return
	}

	task := models.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      models.TaskStatusPending,
		Priority:    models.TaskPriorityMedium,
		UserID:      userID,
		ProjectID:   req.ProjectID,
	}

	if req.Status != "" {
		status := models.TaskStatus(req.Status)
		if !status.Valid() {
			apperrors.BadRequest(c, "Unknown status")
			return
		}
		task.Status = status
	}
	if req.Priority != "" {
		priority := models.TaskPriority(req.Priority)
		if !priority.Valid() {
			apperrors.BadRequest(c, "Unknown priority")
			return
		}
		task.Priority = priority
	}
	if req.DueDate != nil && *req.DueDate != "" {
		dueDate, err := repository.ParseDueDate(*req.DueDate)
		if err != nil {
			apperrors.BadRequest(c, "Invalid due date")
			return
		}
		task.DueDate = &dueDate
	}

	if err := h.tasks.Create(&task); err != nil {
		respondRepoError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// GetTask returns the task loaded by the access middleware.
func (h *TaskHandler) GetTask(c *gin.Context) {
	task, ok := taskFromContext(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask applies a partial update to the task loaded by the access
// middleware.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	task, ok := taskFromContext(c)
	if !ok {
		return
	}

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		apperrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.tasks.Update(task, fields); err != nil {
		respondRepoError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask removes the task loaded by the access middleware.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	task, ok := taskFromContext(c)
	if !ok {
		return
	}

	if err := h.tasks.Delete(task.ID); err != nil {
		respondRepoError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func taskFromContext(c *gin.Context) (*models.Task, bool) {
	raw, exists := c.Get(middleware.ContextTaskKey)
	if !exists {
		apperrors.InternalError(c, "Task not found in context")
		return nil, false
	}

	task, ok := raw.(*models.Task)
	if !ok {
		apperrors.InternalError(c, "Invalid task data")
		return nil, false
	}
	return task, true
}
