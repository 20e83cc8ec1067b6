package repository

import (
	"github.com/planwise-dev/planwise-api/internal/models"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create persists a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// FindByID finds a project by ID with its collaborators loaded, so
// access checks can run without a second query.
func (r *GormProjectRepository) FindByID(id uint) (*models.Project, error) {
	var project models.Project
	if err := r.db.Preload("Collaborators").First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// ListForUser returns projects the user owns or collaborates on.
func (r *GormProjectRepository) ListForUser(userID uint) ([]models.Project, error) {
	var projects []models.Project
	collabSubQuery := r.db.Model(&models.ProjectCollaborator{}).
		Select("project_id").
		Where("user_id = ?", userID)

	if err := r.db.Preload("Collaborators").
		Where("owner_id = ? OR id IN (?)", userID, collabSubQuery).
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Update applies allow-listed fields (title, description). Unknown keys
// are silently ignored; the owner cannot be reassigned through a patch.
func (r *GormProjectRepository) Update(project *models.Project, fields map[string]any) error {
	if title, ok, err := stringField(fields, "title"); err != nil {
		return err
	} else if ok {
		project.Title = title
	}

	if description, ok, err := stringField(fields, "description"); err != nil {
		return err
	} else if ok {
		project.Description = description
	}

	return r.db.Save(project).Error
}

// Delete removes the project, its tasks, and its collaborator records
// in one transaction.
func (r *GormProjectRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectCollaborator{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, id).Error
	})
}
