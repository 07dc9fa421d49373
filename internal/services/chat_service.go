package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/natsukih/notes-api/internal/constants"
	"github.com/natsukih/notes-api/internal/models"
	"github.com/natsukih/notes-api/internal/repository"
)

var (
	ErrMissingMessage          = errors.New("missing message")
	ErrCompletionFailed        = errors.New("completion service request failed")
	ErrCompletionNotConfigured = errors.New("completion service is not configured")
)

// ChatService relays messages on a note's thread to the completion
// provider. The user's message is always persisted before the outbound
// call; a provider failure leaves it in place awaiting a later retry.
type ChatService struct {
	chatRepo   repository.ChatRepository
	completion CompletionClient
}

// NewChatService creates a new ChatService. completion may be nil when
// no provider is configured.
func NewChatService(chatRepo repository.ChatRepository, completion CompletionClient) *ChatService {
	return &ChatService{
		chatRepo:   chatRepo,
		completion: completion,
	}
}

// SubmitMessage appends a user message to the note's thread, forwards it
// to the completion provider, and appends the reply when one arrives.
// The caller must have verified note ownership.
func (s *ChatService) SubmitMessage(ctx context.Context, noteID uint64, message string) error {
	if message == "" {
		return ErrMissingMessage
	}

	if s.completion == nil {
		return ErrCompletionNotConfigured
	}

	userChat := &models.Chat{
		NoteID:        noteID,
		Message:       message,
		IsUserRequest: true,
	}
	if err := s.chatRepo.Create(userChat); err != nil {
		return fmt.Errorf("failed to store message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, constants.CompletionTimeout)
	defer cancel()

	reply, err := s.completion.Complete(ctx, message)
	if err != nil {
		// The user message row is already committed; keep it.
		return fmt.Errorf("%w: %v", ErrCompletionFailed, err)
	}

	if reply == "" {
		return nil
	}

	replyChat := &models.Chat{
		NoteID:        noteID,
		Message:       reply,
		IsUserRequest: false,
	}
	if err := s.chatRepo.Create(replyChat); err != nil {
		return fmt.Errorf("failed to store reply: %w", err)
	}

	return nil
}

// ListChats returns the note's thread in creation order. The caller must
// have verified note ownership.
func (s *ChatService) ListChats(noteID uint64) ([]models.Chat, error) {
	chats, err := s.chatRepo.ListByNote(noteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chats: %w", err)
	}
	return chats, nil
}
