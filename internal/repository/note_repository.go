package repository

import (
	"github.com/natsukih/notes-api/internal/models"
	"gorm.io/gorm"
)

// GormNoteRepository is a GORM implementation of NoteRepository
type GormNoteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new NoteRepository
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &GormNoteRepository{db: db}
}

// Create creates a new note
func (r *GormNoteRepository) Create(note *models.Note) error {
	return r.db.Create(note).Error
}

// FindByIDAndOwner finds a note by ID scoped to its owner. A note owned
// by someone else is indistinguishable from a missing one.
func (r *GormNoteRepository) FindByIDAndOwner(id, userID uint64) (*models.Note, error) {
	var note models.Note
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

// ListByOwner retrieves all notes owned by a user in insertion order
func (r *GormNoteRepository) ListByOwner(userID uint64) ([]models.Note, error) {
	var notes []models.Note
	if err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

// Update updates a note
func (r *GormNoteRepository) Update(note *models.Note) error {
	return r.db.Save(note).Error
}

// Delete deletes a note together with its chat rows
func (r *GormNoteRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("note_id = ?", id).Delete(&models.Chat{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Note{}, id).Error
	})
}
