package acceptance

import (
	"net/http"

	"github.com/notesfe/notes-api/internal/dto"
)

func (s *Suite) TestNotes_RequireAuthentication() {
	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/notes"},
		{http.MethodGet, "/api/notes"},
		{http.MethodGet, "/api/notes/some-id"},
		{http.MethodPut, "/api/notes/some-id"},
		{http.MethodDelete, "/api/notes/some-id"},
	}

	for _, p := range paths {
		resp := s.doJSON(p.method, p.path, "", nil)
		s.Equal(http.StatusUnauthorized, resp.StatusCode, "%s %s", p.method, p.path)
		s.Equal("Authorization token required", s.decodeError(resp).Error)
	}
}

func (s *Suite) TestCreateNote() {
	token := s.authToken("notes@example.com")

	resp := s.doJSON(http.MethodPost, "/api/notes", token, dto.CreateNoteRequest{
		Title:   "  Groceries  ",
		Content: "  milk, eggs  ",
	})

	var noteResp dto.NoteResponse
	s.decode(resp, &noteResp)

	s.Equal(http.StatusCreated, resp.StatusCode)
	s.True(noteResp.Success)
	s.NotEmpty(noteResp.Note.ID)
	s.Equal("Groceries", noteResp.Note.Title, "title should be trimmed")
	s.Equal("milk, eggs", noteResp.Note.Content, "content should be trimmed")
	s.False(noteResp.Note.CreatedAt.IsZero())
	s.Equal(noteResp.Note.CreatedAt, noteResp.Note.UpdatedAt)
}

func (s *Suite) TestCreateNote_MissingFields() {
	token := s.authToken("notes@example.com")

	resp := s.doJSON(http.MethodPost, "/api/notes", token, dto.CreateNoteRequest{
		Title: "only a title",
	})

	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("Title and content are required", s.decodeError(resp).Error)
}

func (s *Suite) TestListNotes_OrderedMostRecentFirst() {
	token := s.authToken("notes@example.com")

	s.createNote(token, "first", "oldest")
	s.createNote(token, "second", "newest")

	resp := s.doJSON(http.MethodGet, "/api/notes", token, nil)

	var listResp dto.NotesListResponse
	s.decode(resp, &listResp)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.True(listResp.Success)
	s.Equal(2, listResp.Count)
	s.Require().Len(listResp.Notes, 2)
	s.Equal("second", listResp.Notes[0].Title)
	s.Equal("first", listResp.Notes[1].Title)
}

func (s *Suite) TestListNotes_EmptyIsValid() {
	token := s.authToken("empty@example.com")

	resp := s.doJSON(http.MethodGet, "/api/notes", token, nil)

	var listResp dto.NotesListResponse
	s.decode(resp, &listResp)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.True(listResp.Success)
	s.Equal(0, listResp.Count)
	s.NotNil(listResp.Notes)
	s.Empty(listResp.Notes)
}

func (s *Suite) TestGetNote() {
	token := s.authToken("notes@example.com")
	noteID := s.createNote(token, "keep", "this one")

	resp := s.doJSON(http.MethodGet, "/api/notes/"+noteID, token, nil)

	var noteResp dto.NoteResponse
	s.decode(resp, &noteResp)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal(noteID, noteResp.Note.ID)
	s.Equal("keep", noteResp.Note.Title)
}

func (s *Suite) TestGetNote_NotFound() {
	token := s.authToken("notes@example.com")

	resp := s.doJSON(http.MethodGet, "/api/notes/no-such-id", token, nil)

	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("Note not found", s.decodeError(resp).Error)
}

func (s *Suite) TestGetNote_OtherUsersNoteLooksAbsent() {
	ownerToken := s.authToken("owner@example.com")
	noteID := s.createNote(ownerToken, "private", "secret")

	otherToken := s.authToken("other@example.com")
	resp := s.doJSON(http.MethodGet, "/api/notes/"+noteID, otherToken, nil)

	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *Suite) TestUpdateNote_PartialField() {
	token := s.authToken("notes@example.com")
	noteID := s.createNote(token, "draft", "original content")

	title := "final"
	resp := s.doJSON(http.MethodPut, "/api/notes/"+noteID, token, dto.UpdateNoteRequest{
		Title: &title,
	})

	var noteResp dto.NoteResponse
	s.decode(resp, &noteResp)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("final", noteResp.Note.Title)
	s.Equal("original content", noteResp.Note.Content, "unsupplied field stays untouched")
}

func (s *Suite) TestUpdateNote_AdvancesUpdatedAt() {
	token := s.authToken("notes@example.com")
	noteID := s.createNote(token, "draft", "content")

	getResp := s.doJSON(http.MethodGet, "/api/notes/"+noteID, token, nil)
	var before dto.NoteResponse
	s.decode(getResp, &before)

	title := "revised"
	resp := s.doJSON(http.MethodPut, "/api/notes/"+noteID, token, dto.UpdateNoteRequest{
		Title: &title,
	})

	var after dto.NoteResponse
	s.decode(resp, &after)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.True(after.Note.UpdatedAt.After(before.Note.UpdatedAt),
		"updated_at must move strictly past the prior value, got %v then %v",
		before.Note.UpdatedAt, after.Note.UpdatedAt)
	s.True(after.Note.CreatedAt.Equal(before.Note.CreatedAt), "created_at must not change on update")
}

func (s *Suite) TestUpdateNote_NoFields() {
	token := s.authToken("notes@example.com")
	noteID := s.createNote(token, "draft", "content")

	resp := s.doJSON(http.MethodPut, "/api/notes/"+noteID, token, dto.UpdateNoteRequest{})

	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("At least one of title or content is required", s.decodeError(resp).Error)
}

func (s *Suite) TestUpdateNote_OtherUsersNoteIs404() {
	ownerToken := s.authToken("owner@example.com")
	noteID := s.createNote(ownerToken, "private", "secret")

	otherToken := s.authToken("other@example.com")
	title := "hijacked"
	resp := s.doJSON(http.MethodPut, "/api/notes/"+noteID, otherToken, dto.UpdateNoteRequest{
		Title: &title,
	})

	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("Note not found or not permitted", s.decodeError(resp).Error)

	// The note is untouched.
	getResp := s.doJSON(http.MethodGet, "/api/notes/"+noteID, ownerToken, nil)
	var noteResp dto.NoteResponse
	s.decode(getResp, &noteResp)
	s.Equal("private", noteResp.Note.Title)
}

func (s *Suite) TestDeleteNote() {
	token := s.authToken("notes@example.com")
	noteID := s.createNote(token, "ephemeral", "to delete")

	resp := s.doJSON(http.MethodDelete, "/api/notes/"+noteID, token, nil)

	var delResp dto.DeleteNoteResponse
	s.decode(resp, &delResp)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.True(delResp.Success)
	s.True(delResp.Note.Deleted)
	s.Equal(noteID, delResp.Note.ID)
	s.NotEmpty(delResp.Message)

	// Deleting again reports not found.
	again := s.doJSON(http.MethodDelete, "/api/notes/"+noteID, token, nil)
	s.Equal(http.StatusNotFound, again.StatusCode)
	again.Body.Close()
}

func (s *Suite) TestDeleteNote_OtherUsersNoteIs404() {
	ownerToken := s.authToken("owner@example.com")
	noteID := s.createNote(ownerToken, "private", "secret")

	otherToken := s.authToken("other@example.com")
	resp := s.doJSON(http.MethodDelete, "/api/notes/"+noteID, otherToken, nil)

	s.Equal(http.StatusNotFound, resp.StatusCode)

	// Still there for the owner.
	getResp := s.doJSON(http.MethodGet, "/api/notes/"+noteID, ownerToken, nil)
	s.Equal(http.StatusOK, getResp.StatusCode)
	getResp.Body.Close()
}

func (s *Suite) createNote(token, title, content string) string {
	resp := s.doJSON(http.MethodPost, "/api/notes", token, dto.CreateNoteRequest{
		Title:   title,
		Content: content,
	})

	var noteResp dto.NoteResponse
	s.decode(resp, &noteResp)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	s.Require().NotEmpty(noteResp.Note.ID)
	return noteResp.Note.ID
}
