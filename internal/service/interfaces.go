package service

import (
	"context"

	"github.com/notesfe/notes-api/internal/dto"
)

// LoginService defines the authentication operations
type LoginService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetUser(ctx context.Context, accessToken string) (*dto.UserResponse, error)
}

// NotesService defines the notes operations. The user id always comes from
// the authenticated context, never from client input.
type NotesService interface {
	Create(ctx context.Context, userID string, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	List(ctx context.Context, userID string) (*dto.NotesListResponse, error)
	GetByID(ctx context.Context, userID, noteID string) (*dto.NoteResponse, error)
	Update(ctx context.Context, userID, noteID string, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, userID, noteID string) (*dto.DeleteNoteResponse, error)
}
