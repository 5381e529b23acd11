package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/notesfe/notes-api/internal/domain"
	"github.com/notesfe/notes-api/internal/dto"
)

// respondError writes the uniform error envelope. The status and message
// come from the error when it carries them, otherwise the per-operation
// fallbacks apply.
func respondError(c *gin.Context, err error, fallbackStatus int, fallbackMessage string) {
	c.JSON(domain.StatusOf(err, fallbackStatus), dto.ErrorResponse{
		Success: false,
		Error:   domain.MessageOf(err, fallbackMessage),
	})
}
