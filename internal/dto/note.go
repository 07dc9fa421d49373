package dto

import (
	"github.com/natsukih/notes-api/internal/models"
)

// NoteDTO represents a note in API responses
type NoteDTO struct {
	ID      uint64 `json:"id"`
	Content string `json:"content"`
}

// ToNoteDTO converts a Note model to NoteDTO
func ToNoteDTO(note models.Note) NoteDTO {
	return NoteDTO{
		ID:      note.ID,
		Content: note.Content,
	}
}

// ToNoteDTOs converts a slice of Note models to NoteDTOs
func ToNoteDTOs(notes []models.Note) []NoteDTO {
	dtos := make([]NoteDTO, len(notes))
	for i, note := range notes {
		dtos[i] = ToNoteDTO(note)
	}
	return dtos
}
