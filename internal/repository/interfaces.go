package repository

import (
	"context"

	"github.com/notesfe/notes-api/internal/domain"
)

// LoginRepository defines the provider-backed authentication operations.
// Each method issues exactly one call to the external provider and returns a
// value or a wrapped error; it never panics.
type LoginRepository interface {
	SignUp(ctx context.Context, email, password string) (*domain.AuthResult, error)
	SignInWithPassword(ctx context.Context, email, password string) (*domain.AuthResult, error)
	GetUserByToken(ctx context.Context, accessToken string) (*domain.User, error)

	// ConfirmUserEmail marks the user's email confirmed through the
	// provider's admin API. It is a no-op when no privileged client is
	// configured.
	ConfirmUserEmail(ctx context.Context, userID string) error

	// CreateUserRecord inserts the mirrored users row, preferring the
	// privileged client and falling back to the caller's session token.
	CreateUserRecord(ctx context.Context, record *domain.UserRecord, sessionToken string) (*domain.UserRecord, error)
}

// NotesRepository defines the provider-backed notes operations. All methods
// scope rows by note id AND owning user id.
type NotesRepository interface {
	Create(ctx context.Context, note *domain.Note) (*domain.Note, error)
	GetAll(ctx context.Context, userID string) ([]domain.Note, error)
	GetByID(ctx context.Context, userID, noteID string) (*domain.Note, error)
	Update(ctx context.Context, userID, noteID string, fields map[string]any) (*domain.Note, error)
	Delete(ctx context.Context, userID, noteID string) error
}
