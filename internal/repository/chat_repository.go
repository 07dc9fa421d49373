package repository

import (
	"github.com/natsukih/notes-api/internal/models"
	"gorm.io/gorm"
)

// GormChatRepository is a GORM implementation of ChatRepository
type GormChatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new ChatRepository
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &GormChatRepository{db: db}
}

// Create creates a new chat row
func (r *GormChatRepository) Create(chat *models.Chat) error {
	return r.db.Create(chat).Error
}

// ListByNote retrieves all chat rows for a note in creation order
func (r *GormChatRepository) ListByNote(noteID uint64) ([]models.Chat, error) {
	var chats []models.Chat
	if err := r.db.Where("note_id = ?", noteID).Order("id ASC").Find(&chats).Error; err != nil {
		return nil, err
	}
	return chats, nil
}
