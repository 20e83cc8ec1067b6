package repository

import (
	"fmt"

	"github.com/planwise-dev/planwise-api/internal/models"
	"gorm.io/gorm"
)

// GormCollaboratorRepository is a GORM implementation of CollaboratorRepository
type GormCollaboratorRepository struct {
	db *gorm.DB
}

// NewCollaboratorRepository creates a new CollaboratorRepository
func NewCollaboratorRepository(db *gorm.DB) CollaboratorRepository {
	return &GormCollaboratorRepository{db: db}
}

// Create persists a new collaborator record. The (user, project) pair
// is pre-checked for a clean error message; the composite unique index
// still guards against racing duplicates.
func (r *GormCollaboratorRepository) Create(collab *models.ProjectCollaborator) error {
	var count int64
	if err := r.db.Model(&models.ProjectCollaborator{}).
		Where("user_id = ? AND project_id = ?", collab.UserID, collab.ProjectID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateCollaborator
	}

	return r.db.Create(collab).Error
}

// FindByID finds a collaborator record by ID
func (r *GormCollaboratorRepository) FindByID(id uint) (*models.ProjectCollaborator, error) {
	var collab models.ProjectCollaborator
	if err := r.db.First(&collab, id).Error; err != nil {
		return nil, err
	}
	return &collab, nil
}

// List returns all collaborator records
func (r *GormCollaboratorRepository) List() ([]models.ProjectCollaborator, error) {
	var collabs []models.ProjectCollaborator
	if err := r.db.Find(&collabs).Error; err != nil {
		return nil, err
	}
	return collabs, nil
}

// Update applies allow-listed fields (role). Unknown keys are silently
// ignored; user and project references are immutable once created.
func (r *GormCollaboratorRepository) Update(collab *models.ProjectCollaborator, fields map[string]any) error {
	if role, ok, err := stringField(fields, "role"); err != nil {
		return err
	} else if ok {
		ro := models.CollaboratorRole(role)
		if !ro.Valid() {
			return fmt.Errorf("%w: unknown role %q", ErrInvalidField, role)
		}
		collab.Role = ro
	}

	return r.db.Save(collab).Error
}

// Delete removes the collaborator record
func (r *GormCollaboratorRepository) Delete(id uint) error {
	return r.db.Delete(&models.ProjectCollaborator{}, id).Error
}
