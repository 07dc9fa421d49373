package models

import "time"

// Chat is a single message in a note's conversation thread. Rows are
// written in pairs (user message, provider reply) and never updated.
type Chat struct {
	ID            uint64    `gorm:"primarykey" json:"id"`
	NoteID        uint64    `gorm:"not null" json:"note_id"`
	Message       string    `gorm:"type:text;not null" json:"message"`
	IsUserRequest bool      `gorm:"not null" json:"is_user_request"`
	CreatedAt     time.Time `json:"created_at"`

	// Relations
	Note Note `gorm:"foreignKey:NoteID" json:"note,omitempty"`
}
