package dto

import "github.com/notesfe/notes-api/internal/domain"

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName *string `json:"full_name"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateNoteRequest represents a note creation request
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateNoteRequest represents a partial note update; nil fields are left
// untouched.
type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// RegisterResponse is returned on successful registration
type RegisterResponse struct {
	Success bool         `json:"success"`
	User    *domain.User `json:"user"`
	Message string       `json:"message"`
}

// SessionInfo is the session payload handed back to the caller on login
type SessionInfo struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
	ExpiresIn    int    `json:"expires_in"`
}

// LoginResponse is returned on successful login
type LoginResponse struct {
	Success bool         `json:"success"`
	User    *domain.User `json:"user"`
	Session SessionInfo  `json:"session"`
}

// UserResponse is returned by the getUser operation
type UserResponse struct {
	Success bool         `json:"success"`
	User    *domain.User `json:"user"`
}

// NoteResponse wraps a single note
type NoteResponse struct {
	Success bool         `json:"success"`
	Note    *domain.Note `json:"note"`
}

// NotesListResponse wraps a user's notes; Count always equals len(Notes)
type NotesListResponse struct {
	Success bool          `json:"success"`
	Notes   []domain.Note `json:"notes"`
	Count   int           `json:"count"`
}

// DeletedNote is the payload confirming a deletion
type DeletedNote struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// DeleteNoteResponse is returned on successful deletion
type DeleteNoteResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Note    DeletedNote `json:"note"`
}

// HealthResponse is the liveness payload
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the uniform error envelope
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
