package handler

import (
	"context"

	"github.com/notesfe/notes-api/internal/dto"
)

type fakeLoginService struct {
	registerResp *dto.RegisterResponse
	registerErr  error
	loginResp    *dto.LoginResponse
	loginErr     error
	getUserResp  *dto.UserResponse
	getUserErr   error

	getUserCalls int
	lastToken    string
}

func (f *fakeLoginService) Register(_ context.Context, _ *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	return f.registerResp, f.registerErr
}

func (f *fakeLoginService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.LoginResponse, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeLoginService) GetUser(_ context.Context, accessToken string) (*dto.UserResponse, error) {
	f.getUserCalls++
	f.lastToken = accessToken
	return f.getUserResp, f.getUserErr
}

type fakeNotesService struct {
	createResp *dto.NoteResponse
	createErr  error
	listResp   *dto.NotesListResponse
	listErr    error
	getResp    *dto.NoteResponse
	getErr     error
	updateResp *dto.NoteResponse
	updateErr  error
	deleteResp *dto.DeleteNoteResponse
	deleteErr  error

	lastUserID string
	lastNoteID string
	lastUpdate *dto.UpdateNoteRequest
}

func (f *fakeNotesService) Create(_ context.Context, userID string, _ *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	f.lastUserID = userID
	return f.createResp, f.createErr
}

func (f *fakeNotesService) List(_ context.Context, userID string) (*dto.NotesListResponse, error) {
	f.lastUserID = userID
	return f.listResp, f.listErr
}

func (f *fakeNotesService) GetByID(_ context.Context, userID, noteID string) (*dto.NoteResponse, error) {
	f.lastUserID = userID
	f.lastNoteID = noteID
	return f.getResp, f.getErr
}

func (f *fakeNotesService) Update(_ context.Context, userID, noteID string, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	f.lastUserID = userID
	f.lastNoteID = noteID
	f.lastUpdate = req
	return f.updateResp, f.updateErr
}

func (f *fakeNotesService) Delete(_ context.Context, userID, noteID string) (*dto.DeleteNoteResponse, error) {
	f.lastUserID = userID
	f.lastNoteID = noteID
	return f.deleteResp, f.deleteErr
}
