package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/planwise-dev/planwise-api/internal/apperrors"
	"github.com/planwise-dev/planwise-api/internal/models"
	"github.com/planwise-dev/planwise-api/internal/repository"
	"gorm.io/gorm"
)

// CollaboratorHandler serves the /project-collaborators routes.
type CollaboratorHandler struct {
	collaborators repository.CollaboratorRepository
}

// NewCollaboratorHandler creates a new CollaboratorHandler.
func NewCollaboratorHandler(collaborators repository.CollaboratorRepository) *CollaboratorHandler {
	return &CollaboratorHandler{collaborators: collaborators}
}

// ListCollaborators returns all collaborator records.
func (h *CollaboratorHandler) ListCollaborators(c *gin.Context) {
	collabs, err := h.collaborators.List()
	if err != nil {
		apperrors.InternalError(c, "Failed to fetch collaborators")
		return
	}

	c.JSON(http.StatusOK, collabs)
}

// CreateCollaborator adds a user to a project. Role defaults to member
// when absent.
func (h *CollaboratorHandler) CreateCollaborator(c *gin.Context) {
	type CreateCollaboratorRequest struct {
		UserID    uint   `json:"user_id" binding:"required"`
		ProjectID uint   `json:"project_id" binding:"required"`
		Role      string `json:"role"`
	}

	var req CreateCollaboratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "User ID and project ID are required")
		return
	}

	collab := models.ProjectCollaborator{
		UserID:    req.UserID,
		ProjectID: req.ProjectID,
		Role:      models.RoleMember,
	}

	if req.Role != "" {
		role := models.CollaboratorRole(req.Role)
		if !role.Valid() {
			apperrors.BadRequest(c, "Unknown role")
			return
		}
		collab.Role = role
	}

	if err := h.collaborators.Create(&collab); err != nil {
		respondRepoError(c, err)
		return
	}

	c.JSON(http.StatusCreated, collab)
}

// GetCollaborator returns a collaborator record by ID.
func (h *CollaboratorHandler) GetCollaborator(c *gin.Context) {
	collab, ok := h.loadCollaborator(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, collab)
}

// UpdateCollaborator applies a partial update (role only) to a
// collaborator record.
func (h *CollaboratorHandler) UpdateCollaborator(c *gin.Context) {
	collab, ok := h.loadCollaborator(c)
	if !ok {
		return
	}

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		apperrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.collaborators.Update(collab, fields); err != nil {
		respondRepoError(c, err)
		return
	}

	c.JSON(http.StatusOK, collab)
}

// DeleteCollaborator removes a collaborator record.
func (h *CollaboratorHandler) DeleteCollaborator(c *gin.Context) {
	collab, ok := h.loadCollaborator(c)
	if !ok {
		return
	}

	if err := h.collaborators.Delete(collab.ID); err != nil {
		respondRepoError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CollaboratorHandler) loadCollaborator(c *gin.Context) (*models.ProjectCollaborator, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apperrors.BadRequest(c, "Invalid collaborator ID")
		return nil, false
	}

	collab, err := h.collaborators.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apperrors.NotFound(c, "Collaborator not found")
		} else {
			apperrors.InternalError(c, "Failed to load collaborator")
		}
		return nil, false
	}

	return collab, true
}
