package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/planwise-dev/planwise-api/internal/apperrors"
	"github.com/planwise-dev/planwise-api/internal/dto"
	"github.com/planwise-dev/planwise-api/internal/models"
	"github.com/planwise-dev/planwise-api/internal/repository"
	"gorm.io/gorm"
)

// UserHandler serves the /users routes.
type UserHandler struct {
	users repository.UserRepository
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users repository.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// ListUsers returns all users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.users.List()
	if err != nil {
		apperrors.InternalError(c, "Failed to fetch users")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTOs(users))
}

// GetUser returns a single user by ID.
func (h *UserHandler) GetUser(c *gin.Context) {
	user, ok := h.loadUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// UpdateUser applies a partial update to a user.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	user, ok := h.loadUser(c)
	if !ok {
		return
	}

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		apperrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.users.Update(user, fields); err != nil {
		respondRepoError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// DeleteUser removes a user and cascades to their projects, tasks, and
// collaborations.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	user, ok := h.loadUser(c)
	if !ok {
		return
	}

	if err := h.users.Delete(user.ID); err != nil {
		respondRepoError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *UserHandler) loadUser(c *gin.Context) (*models.User, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apperrors.BadRequest(c, "Invalid user ID")
		return nil, false
	}

	user, err := h.users.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apperrors.NotFound(c, "User not found")
		} else {
			apperrors.InternalError(c, "Failed to load user")
		}
		return nil, false
	}

	return user, true
}

// respondRepoError translates repository failures into the error
// taxonomy at the handler boundary.
func respondRepoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrInvalidField),
		errors.Is(err, repository.ErrUsernameTaken),
		errors.Is(err, repository.ErrEmailTaken),
		errors.Is(err, repository.ErrDuplicateCollaborator):
		apperrors.BadRequest(c, err.Error())
	case errors.Is(err, gorm.ErrDuplicatedKey):
		apperrors.ConstraintViolation(c, "Duplicate value violates a uniqueness constraint")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		apperrors.ConstraintViolation(c, "Referenced record does not exist")
	case errors.Is(err, gorm.ErrRecordNotFound):
		apperrors.NotFound(c, "")
	default:
		apperrors.InternalError(c, "")
	}
}
