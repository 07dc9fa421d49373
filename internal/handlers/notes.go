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

// NoteHandler coordinates note CRUD HTTP handlers.
type NoteHandler struct {
	noteService *services.NoteService
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(noteService *services.NoteService) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
	}
}

// ListNotes returns all notes owned by the current user.
func (h *NoteHandler) ListNotes(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	notes, err := h.noteService.ListNotes(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch notes")
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteDTOs(notes))
}

// CreateNote creates a new note for the current user.
func (h *NoteHandler) CreateNote(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateNoteRequest struct {
		Content string `json:"content"`
	}

	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Missing content")
		return
	}

	note, err := h.noteService.CreateNote(userID, req.Content)
	if err != nil {
		respondNoteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Note created successfully",
		"id":      note.ID,
	})
}

// GetNote returns a single note.
// The note is already loaded and ownership-checked by RequireNoteAccess.
func (h *NoteHandler) GetNote(c *gin.Context) {
	note, ok := middleware.GetNote(c)
	if !ok {
		apierrors.InternalError(c, "Note not found in context")
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteDTO(note))
}

// UpdateNote replaces a note's content.
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	note, ok := middleware.GetNote(c)
	if !ok {
		apierrors.InternalError(c, "Note not found in context")
		return
	}

	type UpdateNoteRequest struct {
		Content string `json:"content"`
	}

	var req UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Missing content")
		return
	}

	if _, err := h.noteService.UpdateNote(userID, note.ID, req.Content); err != nil {
		respondNoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Note updated successfully",
	})
}

// DeleteNote removes a note and its chat thread.
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	note, ok := middleware.GetNote(c)
	if !ok {
		apierrors.InternalError(c, "Note not found in context")
		return
	}

	if err := h.noteService.DeleteNote(userID, note.ID); err != nil {
		respondNoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Note deleted successfully",
	})
}

func respondNoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingContent):
		apierrors.BadRequest(c, "Missing content")
	case errors.Is(err, services.ErrNoteNotFound):
		apierrors.NotFound(c, "Note not found")
	default:
		apierrors.InternalError(c, "")
	}
}
