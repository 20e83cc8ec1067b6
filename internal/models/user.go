package models

import "time"

type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(80);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(128);not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Tasks          []Task                `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	OwnedProjects  []Project             `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	Collaborations []ProjectCollaborator `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
