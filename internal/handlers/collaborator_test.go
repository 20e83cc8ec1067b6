package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/planwise-dev/planwise-api/internal/models"
	"github.com/stretchr/testify/require"
)

func TestCollaboratorHandler_DefaultRole(t *testing.T) {
	env := setupTestEnv(t)
	_, ownerToken := env.signupUser(t, "owner", "owner@example.com", "pw123")
	member, _ := env.signupUser(t, "member", "member@example.com", "pw123")

	w := env.request(t, http.MethodPost, "/projects", map[string]any{"title": "Shared"}, ownerToken)
	require.Equal(t, http.StatusCreated, w.Code)
	var project models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &project))

	w = env.request(t, http.MethodPost, "/project-collaborators", map[string]any{
		"user_id":    member.ID,
		"project_id": project.ID,
	}, ownerToken)
	require.Equal(t, http.StatusCreated, w.Code)

	var collab models.ProjectCollaborator
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &collab))
	require.Equal(t, models.RoleMember, collab.Role)
}

func TestCollaboratorHandler_DuplicatePairRejected(t *testing.T) {
	env := setupTestEnv(t)
	_, ownerToken := env.signupUser(t, "owner", "owner@example.com", "pw123")
	member, _ := env.signupUser(t, "member", "member@example.com", "pw123")

	w := env.request(t, http.MethodPost, "/projects", map[string]any{"title": "Shared"}, ownerToken)
	require.Equal(t, http.StatusCreated, w.Code)
	var project models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &project))

	body := map[string]any{"user_id": member.ID, "project_id": project.ID, "role": "viewer"}
	w = env.request(t, http.MethodPost, "/project-collaborators", body, ownerToken)
	require.Equal(t, http.StatusCreated, w.Code)

	// Same (user, project) pair again: rejected, no second row.
	w = env.request(t, http.MethodPost, "/project-collaborators", body, ownerToken)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.ProjectCollaborator{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestCollaboratorHandler_PatchRole(t *testing.T) {
	env := setupTestEnv(t)
	_, ownerToken := env.signupUser(t, "owner", "owner@example.com", "pw123")
	member, _ := env.signupUser(t, "member", "member@example.com", "pw123")

	w := env.request(t, http.MethodPost, "/projects", map[string]any{"title": "Shared"}, ownerToken)
	require.Equal(t, http.StatusCreated, w.Code)
	var project models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &project))

	w = env.request(t, http.MethodPost, "/project-collaborators", map[string]any{
		"user_id":    member.ID,
		"project_id": project.ID,
	}, ownerToken)
	require.Equal(t, http.StatusCreated, w.Code)
	var collab models.ProjectCollaborator
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &collab))

	w = env.request(t, http.MethodPatch, "/project-collaborators/"+itoa(collab.ID), map[string]any{
		"role": "viewer",
		// References are not patchable; unknown keys are ignored.
		"user_id": 999,
	}, ownerToken)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.ProjectCollaborator
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, models.RoleViewer, updated.Role)
	require.Equal(t, member.ID, updated.UserID)

	w = env.request(t, http.MethodPatch, "/project-collaborators/"+itoa(collab.ID), map[string]any{
		"role": "superadmin",
	}, ownerToken)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCollaboratorHandler_NotFound(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.signupUser(t, "solo", "solo@example.com", "pw123")

	w := env.request(t, http.MethodGet, "/project-collaborators/42", nil, token)
	require.Equal(t, http.StatusNotFound, w.Code)
}
