package repository

import (
	"github.com/natsukih/notes-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	// Create creates a new note
	Create(note *models.Note) error

	// FindByIDAndOwner finds a note by ID scoped to its owner
	FindByIDAndOwner(id, userID uint64) (*models.Note, error)

	// ListByOwner retrieves all notes owned by a user in insertion order
	ListByOwner(userID uint64) ([]models.Note, error)

	// Update updates a note
	Update(note *models.Note) error

	// Delete deletes a note together with its chat rows
	Delete(id uint64) error
}

// ChatRepository defines the interface for chat data access
type ChatRepository interface {
	// Create creates a new chat row
	Create(chat *models.Chat) error

	// ListByNote retrieves all chat rows for a note in creation order
	ListByNote(noteID uint64) ([]models.Chat, error)
}
