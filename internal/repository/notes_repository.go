package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/notesfe/notes-api/internal/domain"
	"github.com/notesfe/notes-api/pkg/supabase"
	"go.uber.org/zap"
)

const notesTable = "notes"

// notesRepository implements NotesRepository over the provider's table API
type notesRepository struct {
	client *supabase.Client
	logger *zap.Logger
}

// NewNotesRepository creates a provider-backed notes repository
func NewNotesRepository(client *supabase.Client, logger *zap.Logger) NotesRepository {
	return &notesRepository{client: client, logger: logger}
}

// Create inserts a new note, stamping created_at and updated_at with the
// same server-side instant.
func (r *notesRepository) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	now := time.Now().UTC()
	payload := map[string]any{
		"user_id":    note.UserID,
		"title":      note.Title,
		"content":    note.Content,
		"created_at": now.Format(time.RFC3339Nano),
		"updated_at": now.Format(time.RFC3339Nano),
	}

	var rows []domain.Note
	if err := r.client.Insert(ctx, notesTable, "", payload, &rows); err != nil {
		r.logger.Error("note insert failed", zap.String("user_id", note.UserID), zap.Error(err))
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	if len(rows) == 0 {
		r.logger.Error("note insert returned no rows", zap.String("user_id", note.UserID))
		return nil, ErrNotFound
	}

	r.logger.Info("note created", zap.String("note_id", rows[0].ID), zap.String("user_id", note.UserID))
	return &rows[0], nil
}

// GetAll returns the user's notes, most recent first. An empty result is a
// valid outcome and returns an empty slice, never nil.
func (r *notesRepository) GetAll(ctx context.Context, userID string) ([]domain.Note, error) {
	notes := []domain.Note{}
	filters := supabase.Filters{"user_id": userID}

	if err := r.client.Select(ctx, notesTable, "", filters, "created_at.desc", &notes); err != nil {
		r.logger.Error("notes select failed", zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to get notes: %w", err)
	}

	return notes, nil
}

// GetByID returns a single note scoped by id AND owner
func (r *notesRepository) GetByID(ctx context.Context, userID, noteID string) (*domain.Note, error) {
	var rows []domain.Note
	filters := supabase.Filters{"id": noteID, "user_id": userID}

	if err := r.client.Select(ctx, notesTable, "", filters, "", &rows); err != nil {
		r.logger.Error("note select failed", zap.String("note_id", noteID), zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	return &rows[0], nil
}

// Update patches a note scoped by id AND owner. Zero affected rows means the
// note is absent or owned by someone else.
func (r *notesRepository) Update(ctx context.Context, userID, noteID string, fields map[string]any) (*domain.Note, error) {
	var rows []domain.Note
	filters := supabase.Filters{"id": noteID, "user_id": userID}

	if err := r.client.Update(ctx, notesTable, "", filters, fields, &rows); err != nil {
		r.logger.Error("note update failed", zap.String("note_id", noteID), zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	r.logger.Info("note updated", zap.String("note_id", noteID), zap.String("user_id", userID))
	return &rows[0], nil
}

// Delete removes a note scoped by id AND owner
func (r *notesRepository) Delete(ctx context.Context, userID, noteID string) error {
	filters := supabase.Filters{"id": noteID, "user_id": userID}

	if err := r.client.Delete(ctx, notesTable, "", filters); err != nil {
		r.logger.Error("note delete failed", zap.String("note_id", noteID), zap.String("user_id", userID), zap.Error(err))
		return fmt.Errorf("failed to delete note: %w", err)
	}

	r.logger.Info("note deleted", zap.String("note_id", noteID), zap.String("user_id", userID))
	return nil
}
