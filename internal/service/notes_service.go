package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/notesfe/notes-api/internal/domain"
	"github.com/notesfe/notes-api/internal/dto"
	"github.com/notesfe/notes-api/internal/repository"
	"go.uber.org/zap"
)

// notesService implements NotesService over the notes repository
type notesService struct {
	repo   repository.NotesRepository
	logger *zap.Logger
}

// NewNotesService creates a new notes service
func NewNotesService(repo repository.NotesRepository, logger *zap.Logger) NotesService {
	return &notesService{repo: repo, logger: logger}
}

// Create inserts a new note for the user
func (s *notesService) Create(ctx context.Context, userID string, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	note := &domain.Note{
		UserID:  userID,
		Title:   strings.TrimSpace(req.Title),
		Content: strings.TrimSpace(req.Content),
	}

	created, err := s.repo.Create(ctx, note)
	if err != nil {
		s.logger.Error("create note failed", zap.String("user_id", userID), zap.Error(err))
		return nil, upstreamError(err, http.StatusBadRequest, "Failed to create note")
	}

	return &dto.NoteResponse{Success: true, Note: created}, nil
}

// List returns all of the user's notes, most recent first
func (s *notesService) List(ctx context.Context, userID string) (*dto.NotesListResponse, error) {
	notes, err := s.repo.GetAll(ctx, userID)
	if err != nil {
		s.logger.Error("list notes failed", zap.String("user_id", userID), zap.Error(err))
		return nil, upstreamError(err, http.StatusInternalServerError, "Failed to get notes")
	}

	return &dto.NotesListResponse{
		Success: true,
		Notes:   notes,
		Count:   len(notes),
	}, nil
}

// GetByID returns a single owned note
func (s *notesService) GetByID(ctx context.Context, userID, noteID string) (*dto.NoteResponse, error) {
	note, err := s.repo.GetByID(ctx, userID, noteID)
	if err != nil {
		s.logger.Error("get note failed", zap.String("note_id", noteID), zap.String("user_id", userID), zap.Error(err))
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFound("Note not found")
		}
		return nil, upstreamError(err, http.StatusNotFound, "Failed to get note")
	}

	return &dto.NoteResponse{Success: true, Note: note}, nil
}

// Update patches the supplied fields of an owned note and refreshes
// updated_at
func (s *notesService) Update(ctx context.Context, userID, noteID string, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	fields := map[string]any{
		"updated_at": time.Now().UTC().Format(time.RFC3339Nano),
	}
	if req.Title != nil {
		fields["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		fields["content"] = strings.TrimSpace(*req.Content)
	}

	note, err := s.repo.Update(ctx, userID, noteID, fields)
	if err != nil {
		s.logger.Error("update note failed", zap.String("note_id", noteID), zap.String("user_id", userID), zap.Error(err))
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFound("Note not found or not permitted")
		}
		return nil, upstreamError(err, http.StatusBadRequest, "Failed to update note")
	}

	return &dto.NoteResponse{Success: true, Note: note}, nil
}

// Delete removes an owned note after an existence and ownership check
func (s *notesService) Delete(ctx context.Context, userID, noteID string) (*dto.DeleteNoteResponse, error) {
	if _, err := s.repo.GetByID(ctx, userID, noteID); err != nil {
		s.logger.Error("delete note: ownership check failed", zap.String("note_id", noteID), zap.String("user_id", userID), zap.Error(err))
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFound("Note not found or not permitted")
		}
		return nil, upstreamError(err, http.StatusNotFound, "Failed to delete note")
	}

	if err := s.repo.Delete(ctx, userID, noteID); err != nil {
		s.logger.Error("delete note failed", zap.String("note_id", noteID), zap.String("user_id", userID), zap.Error(err))
		return nil, upstreamError(err, http.StatusNotFound, "Failed to delete note")
	}

	return &dto.DeleteNoteResponse{
		Success: true,
		Message: "Note deleted successfully",
		Note:    dto.DeletedNote{ID: noteID, Deleted: true},
	}, nil
}
