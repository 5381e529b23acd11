package repository

import (
	"github.com/notesfe/notes-api/pkg/supabase"
	"go.uber.org/zap"
)

// Repositories holds all repository interfaces
type Repositories struct {
	Login LoginRepository
	Notes NotesRepository
}

// NewRepositories creates all repositories over the provider clients.
// admin may be nil when no service-role key is configured.
func NewRepositories(client, admin *supabase.Client, logger *zap.Logger) *Repositories {
	return &Repositories{
		Login: NewLoginRepository(client, admin, logger),
		Notes: NewNotesRepository(client, logger),
	}
}
