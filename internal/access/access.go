// Package access holds the pure authorization predicates route
// middleware applies before permitting reads or writes on a specific
// project or task.
package access

import "github.com/planwise-dev/planwise-api/internal/models"

// CanAccessProject reports whether the user owns the project or appears
// in its collaborator set (any role). The project's Collaborators must
// already be loaded.
func CanAccessProject(userID uint, project *models.Project) bool {
	if project.OwnerID == userID {
		return true
	}
	for _, collab := range project.Collaborators {
		if collab.UserID == userID {
			return true
		}
	}
	return false
}

// CanAccessTask reports whether the user is the task's assignee.
func CanAccessTask(userID uint, task *models.Task) bool {
	return task.UserID == userID
}
