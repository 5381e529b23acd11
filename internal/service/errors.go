package service

import (
	"github.com/notesfe/notes-api/internal/domain"
	"github.com/notesfe/notes-api/pkg/supabase"
)

// upstreamError translates a failed provider call into a domain error.
// Provider-supplied status and message win; transport failures and other
// opaque errors fall back to the operation's default.
func upstreamError(err error, fallbackStatus int, fallbackMessage string) *domain.Error {
	if apiErr, ok := supabase.AsAPIError(err); ok {
		return domain.NewUpstream(apiErr.StatusCode, apiErr.Message, err)
	}
	return domain.NewUpstream(fallbackStatus, fallbackMessage, err)
}
