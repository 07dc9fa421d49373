package services

import (
	"errors"
	"fmt"

	"github.com/natsukih/notes-api/internal/models"
	"github.com/natsukih/notes-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrNoteNotFound   = errors.New("note not found")
	ErrMissingContent = errors.New("missing content")
)

// NoteService handles note business logic. Every operation is scoped to
// the calling user; a note owned by someone else behaves exactly like a
// note that does not exist.
type NoteService struct {
	noteRepo repository.NoteRepository
}

// NewNoteService creates a new NoteService
func NewNoteService(noteRepo repository.NoteRepository) *NoteService {
	return &NoteService{
		noteRepo: noteRepo,
	}
}

// ListNotes returns all notes owned by the user
func (s *NoteService) ListNotes(userID uint64) ([]models.Note, error) {
	notes, err := s.noteRepo.ListByOwner(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// CreateNote creates a new note owned by the user
func (s *NoteService) CreateNote(userID uint64, content string) (*models.Note, error) {
	if content == "" {
		return nil, ErrMissingContent
	}

	note := &models.Note{
		Content: content,
		UserID:  userID,
	}

	if err := s.noteRepo.Create(note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return note, nil
}

// GetNote returns the user's note with the given ID
func (s *NoteService) GetNote(userID, noteID uint64) (*models.Note, error) {
	note, err := s.noteRepo.FindByIDAndOwner(noteID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to find note: %w", err)
	}

	return note, nil
}

// UpdateNote replaces the content of the user's note
func (s *NoteService) UpdateNote(userID, noteID uint64, content string) (*models.Note, error) {
	note, err := s.GetNote(userID, noteID)
	if err != nil {
		return nil, err
	}

	if content == "" {
		return nil, ErrMissingContent
	}

	note.Content = content
	if err := s.noteRepo.Update(note); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return note, nil
}

// DeleteNote removes the user's note and its chat thread
func (s *NoteService) DeleteNote(userID, noteID uint64) error {
	note, err := s.GetNote(userID, noteID)
	if err != nil {
		return err
	}

	if err := s.noteRepo.Delete(note.ID); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	return nil
}
