package repository

import (
	"fmt"

	"github.com/planwise-dev/planwise-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create persists a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(id uint) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByAssignee returns tasks assigned to the user
func (r *GormTaskRepository) ListByAssignee(userID uint) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Where("user_id = ?", userID).Order("created_at").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update applies allow-listed fields (title, description, status,
// priority, due_date, project_id). Unknown keys are silently ignored;
// the assignee cannot be reassigned through a patch. A serialized
// due_date is parsed before assignment, and saving always refreshes the
// updated-at timestamp.
func (r *GormTaskRepository) Update(task *models.Task, fields map[string]any) error {
	if title, ok, err := stringField(fields, "title"); err != nil {
		return err
	} else if ok {
		task.Title = title
	}

	if description, ok, err := stringField(fields, "description"); err != nil {
		return err
	} else if ok {
		task.Description = description
	}

	if status, ok, err := stringField(fields, "status"); err != nil {
		return err
	} else if ok {
		s := models.TaskStatus(status)
		if !s.Valid() {
			return fmt.Errorf("%w: unknown status %q", ErrInvalidField, status)
		}
		task.Status = s
	}

	if priority, ok, err := stringField(fields, "priority"); err != nil {
		return err
	} else if ok {
		p := models.TaskPriority(priority)
		if !p.Valid() {
			return fmt.Errorf("%w: unknown priority %q", ErrInvalidField, priority)
		}
		task.Priority = p
	}

	if dueDate, ok, err := timeField(fields, "due_date"); err != nil {
		return err
	} else if ok {
		task.DueDate = dueDate
	}

	if projectID, ok, err := idField(fields, "project_id"); err != nil {
		return err
	} else if ok {
		task.ProjectID = projectID
	}

	return r.db.Save(task).Error
}

// Delete removes the task
func (r *GormTaskRepository) Delete(id uint) error {
	return r.db.Delete(&models.Task{}, id).Error
}
