package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/notesfe/notes-api/internal/dto"
	"github.com/notesfe/notes-api/internal/service"
	"go.uber.org/zap"
)

// NotesHandler handles notes CRUD requests. Every route behind it runs after
// AuthMiddleware, so the user is always present in the context.
type NotesHandler struct {
	notesService service.NotesService
	logger       *zap.Logger
}

// NewNotesHandler creates a new notes handler
func NewNotesHandler(notesService service.NotesService, logger *zap.Logger) *NotesHandler {
	return &NotesHandler{
		notesService: notesService,
		logger:       logger,
	}
}

func (h *NotesHandler) currentUserID(c *gin.Context) (string, bool) {
	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Success: false,
			Error:   "Authorization token required",
		})
		return "", false
	}
	return user.ID, true
}

// Create creates a note for the authenticated user
// @Summary Create a note
// @Tags notes
// @Accept json
// @Produce json
// @Param request body dto.CreateNoteRequest true "Note content"
// @Success 201 {object} dto.NoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/notes [post]
func (h *NotesHandler) Create(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Success: false,
			Error:   "Title and content are required",
		})
		return
	}

	response, err := h.notesService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.logger.Warn("note creation failed", zap.String("user_id", userID), zap.Error(err))
		respondError(c, err, http.StatusBadRequest, "Failed to create note")
		return
	}

	c.JSON(http.StatusCreated, response)
}

// List returns all notes of the authenticated user, most recent first
// @Summary List notes
// @Tags notes
// @Produce json
// @Success 200 {object} dto.NotesListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/notes [get]
func (h *NotesHandler) List(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	response, err := h.notesService.List(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("notes listing failed", zap.String("user_id", userID), zap.Error(err))
		respondError(c, err, http.StatusInternalServerError, "Failed to fetch notes")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetByID returns a single note owned by the authenticated user
// @Summary Get a note
// @Tags notes
// @Produce json
// @Param id path string true "Note id"
// @Success 200 {object} dto.NoteResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/notes/{id} [get]
func (h *NotesHandler) GetByID(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	noteID := c.Param("id")
	if noteID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Success: false,
			Error:   "Note id is required",
		})
		return
	}

	response, err := h.notesService.GetByID(c.Request.Context(), userID, noteID)
	if err != nil {
		h.logger.Warn("note lookup failed", zap.String("user_id", userID), zap.String("note_id", noteID), zap.Error(err))
		respondError(c, err, http.StatusNotFound, "Note not found")
		return
	}

	c.JSON(http.StatusOK, response)
}

// Update partially updates a note owned by the authenticated user
// @Summary Update a note
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "Note id"
// @Param request body dto.UpdateNoteRequest true "Fields to update"
// @Success 200 {object} dto.NoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/notes/{id} [put]
func (h *NotesHandler) Update(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	noteID := c.Param("id")
	if noteID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Success: false,
			Error:   "Note id is required",
		})
		return
	}

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if req.Title == nil && req.Content == nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Success: false,
			Error:   "At least one of title or content is required",
		})
		return
	}

	response, err := h.notesService.Update(c.Request.Context(), userID, noteID, &req)
	if err != nil {
		h.logger.Warn("note update failed", zap.String("user_id", userID), zap.String("note_id", noteID), zap.Error(err))
		respondError(c, err, http.StatusBadRequest, "Failed to update note")
		return
	}

	c.JSON(http.StatusOK, response)
}

// Delete removes a note owned by the authenticated user
// @Summary Delete a note
// @Tags notes
// @Produce json
// @Param id path string true "Note id"
// @Success 200 {object} dto.DeleteNoteResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/notes/{id} [delete]
func (h *NotesHandler) Delete(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	noteID := c.Param("id")
	if noteID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Success: false,
			Error:   "Note id is required",
		})
		return
	}

	response, err := h.notesService.Delete(c.Request.Context(), userID, noteID)
	if err != nil {
		h.logger.Warn("note deletion failed", zap.String("user_id", userID), zap.String("note_id", noteID), zap.Error(err))
		respondError(c, err, http.StatusNotFound, "Note not found or not permitted")
		return
	}

	c.JSON(http.StatusOK, response)
}
