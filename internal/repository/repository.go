package repository

import (
	"errors"

	"github.com/planwise-dev/planwise-api/internal/models"
)

var (
	// ErrUsernameTaken is returned when a username is already registered.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrEmailTaken is returned when an email is already registered.
	ErrEmailTaken = errors.New("email already exists")
	// ErrDuplicateCollaborator is returned when the (user, project) pair already exists.
	ErrDuplicateCollaborator = errors.New("user is already a collaborator on this project")
	// ErrInvalidField is returned when a patch supplies a malformed value
	// for an allowed field.
	ErrInvalidField = errors.New("invalid field value")
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create persists a new user, enforcing username and email uniqueness
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint) (*models.User, error)

	// FindByLogin finds a user by username or email
	FindByLogin(login string) (*models.User, error)

	// List returns all users
	List() ([]models.User, error)

	// Update applies allow-listed fields and refreshes the updated-at timestamp
	Update(user *models.User, fields map[string]any) error

	// Delete removes the user and cascades to owned projects, assigned
	// tasks, and collaboration records
	Delete(id uint) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create persists a new project
	Create(project *models.Project) error

	// FindByID finds a project by ID with its collaborators loaded
	FindByID(id uint) (*models.Project, error)

	// ListForUser returns projects the user owns or collaborates on
	ListForUser(userID uint) ([]models.Project, error)

	// Update applies allow-listed fields and refreshes the updated-at timestamp
	Update(project *models.Project, fields map[string]any) error

	// Delete removes the project and cascades to its tasks and collaborators
	Delete(id uint) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create persists a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint) (*models.Task, error)

	// ListByAssignee returns tasks assigned to the user
	ListByAssignee(userID uint) ([]models.Task, error)

	// Update applies allow-listed fields and refreshes the updated-at timestamp
	Update(task *models.Task, fields map[string]any) error

	// Delete removes the task
	Delete(id uint) error
}

// CollaboratorRepository defines the interface for collaborator data access
type CollaboratorRepository interface {
	// Create persists a new collaborator record, enforcing the unique
	// (user, project) pair
	Create(collab *models.ProjectCollaborator) error

	// FindByID finds a collaborator record by ID
	FindByID(id uint) (*models.ProjectCollaborator, error)

	// List returns all collaborator records
	List() ([]models.ProjectCollaborator, error)

	// Update applies allow-listed fields
	Update(collab *models.ProjectCollaborator, fields map[string]any) error

	// Delete removes the collaborator record
	Delete(id uint) error
}
