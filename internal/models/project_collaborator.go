package models

import "time"

type CollaboratorRole string

const (
	RoleOwner  CollaboratorRole = "owner"
	RoleMember CollaboratorRole = "member"
	RoleViewer CollaboratorRole = "viewer"
)

// Valid reports whether r is one of the known collaborator roles.
func (r CollaboratorRole) Valid() bool {
	switch r {
	case RoleOwner, RoleMember, RoleViewer:
		return true
	}
	return false
}

// ProjectCollaborator links a user to a project with a role. A user
// collaborates on a given project at most once.
type ProjectCollaborator struct {
	ID        uint             `gorm:"primarykey" json:"id"`
	UserID    uint             `gorm:"not null;uniqueIndex:idx_user_project" json:"user_id"`
	ProjectID uint             `gorm:"not null;uniqueIndex:idx_user_project" json:"project_id"`
	Role      CollaboratorRole `gorm:"type:varchar(20);not null;default:'member'" json:"role"`
	CreatedAt time.Time        `json:"created_at"`

	// Relations
	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Project Project `gorm:"foreignKey:ProjectID" json:"-"`
}
