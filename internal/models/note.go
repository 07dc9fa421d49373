package models

import (
	"time"

	"gorm.io/gorm"
)

type Note struct {
	ID        uint64         `gorm:"primarykey" json:"id"`
	Content   string         `gorm:"type:text" json:"content"`
	UserID    uint64         `gorm:"not null" json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	User  User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Chats []Chat `gorm:"foreignKey:NoteID" json:"chats,omitempty"`
}
