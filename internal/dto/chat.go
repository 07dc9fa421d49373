package dto

import (
	"github.com/natsukih/notes-api/internal/models"
)

// ChatDTO represents a single chat message in API responses
type ChatDTO struct {
	ID            uint64 `json:"id"`
	Message       string `json:"message"`
	IsUserRequest bool   `json:"is_user_request"`
}

// ToChatDTO converts a Chat model to ChatDTO
func ToChatDTO(chat models.Chat) ChatDTO {
	return ChatDTO{
		ID:            chat.ID,
		Message:       chat.Message,
		IsUserRequest: chat.IsUserRequest,
	}
}

// ToChatDTOs converts a slice of Chat models to ChatDTOs
func ToChatDTOs(chats []models.Chat) []ChatDTO {
	dtos := make([]ChatDTO, len(chats))
	for i, chat := range chats {
		dtos[i] = ToChatDTO(chat)
	}
	return dtos
}
