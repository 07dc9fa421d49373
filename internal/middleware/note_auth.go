package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/natsukih/notes-api/internal/constants"
	"github.com/natsukih/notes-api/internal/database"
	apierrors "github.com/natsukih/notes-api/internal/errors"
	"github.com/natsukih/notes-api/internal/models"
)

// RequireNoteAccess checks that the note in the URL belongs to the
// current user and stores it in the request context. Notes owned by
// other users get the same 404 as missing ones, so existence is never
// leaked.
func RequireNoteAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		noteIDStr := c.Param("id")
		noteID, err := strconv.ParseUint(noteIDStr, 10, 64)
		if err != nil {
			apierrors.NotFound(c, "Note not found")
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}

		var note models.Note
		if err := database.GetDB().
			Where("id = ? AND user_id = ?", noteID, userID).
			First(&note).Error; err != nil {
			apierrors.NotFound(c, "Note not found")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyNote, note)
		c.Next()
	}
}

// GetNote retrieves the note loaded by RequireNoteAccess from context
func GetNote(c *gin.Context) (models.Note, bool) {
	noteInterface, exists := c.Get(constants.ContextKeyNote)
	if !exists {
		return models.Note{}, false
	}

	note, ok := noteInterface.(models.Note)
	return note, ok
}
