package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/natsukih/notes-api/internal/dto"
	apierrors "github.com/natsukih/notes-api/internal/errors"
	"github.com/natsukih/notes-api/internal/middleware"
	"github.com/natsukih/notes-api/internal/services"
)

// ChatHandler coordinates chat relay HTTP handlers. All routes sit
// behind RequireNoteAccess, so the note in context is owner-checked.
type ChatHandler struct {
	chatService *services.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// ListChats returns a note's conversation thread in creation order.
func (h *ChatHandler) ListChats(c *gin.Context) {
	note, ok := middleware.GetNote(c)
	if !ok {
		apierrors.InternalError(c, "Note not found in context")
		return
	}

	chats, err := h.chatService.ListChats(note.ID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch chats")
		return
	}

	c.JSON(http.StatusOK, dto.ToChatDTOs(chats))
}

// CreateChat appends a user message to the thread, relays it to the
// completion provider, and stores the reply.
func (h *ChatHandler) CreateChat(c *gin.Context) {
	note, ok := middleware.GetNote(c)
	if !ok {
		apierrors.InternalError(c, "Note not found in context")
		return
	}

	type CreateChatRequest struct {
		Message string `json:"message"`
	}

	var req CreateChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Missing message")
		return
	}

	if err := h.chatService.SubmitMessage(c.Request.Context(), note.ID, req.Message); err != nil {
		respondChatError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Chat created successfully",
	})
}

func respondChatError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingMessage):
		apierrors.BadRequest(c, "Missing message")
	case errors.Is(err, services.ErrCompletionNotConfigured):
		apierrors.ServiceUnavailable(c, "Completion service is not configured")
	case errors.Is(err, services.ErrCompletionFailed):
		apierrors.BadGateway(c, "Completion service request failed")
	default:
		apierrors.InternalError(c, "")
	}
}
