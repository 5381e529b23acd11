package domain

import "time"

// Note represents a personal note row in the provider's notes table.
// Every read/update/delete is scoped by both id and owning user_id, so a note
// belonging to another user is indistinguishable from a missing one.
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
