package models

import "time"

type Project struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	OwnerID     uint      `gorm:"not null;index" json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Owner         User                  `gorm:"foreignKey:OwnerID" json:"-"`
	Tasks         []Task                `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
	Collaborators []ProjectCollaborator `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"collaborators,omitempty"`
}
