package acceptance

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// fakeProvider emulates the hosted backend: the auth endpoints issue and
// introspect HS256 tokens, the table endpoints keep rows in memory and honor
// eq filters plus created_at ordering. State is shared across requests and
// reset between tests.
type fakeProvider struct {
	mu sync.Mutex

	jwtSecret      []byte
	anonKey        string
	serviceRoleKey string

	authUsers map[string]*authUser
	userRows  []map[string]any
	noteRows  []noteRow

	server *httptest.Server
}

type authUser struct {
	ID          string
	Email       string
	Password    string
	ConfirmedAt *time.Time
	CreatedAt   time.Time
}

type noteRow struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newFakeProvider(anonKey, serviceRoleKey string) *fakeProvider {
	p := &fakeProvider{
		jwtSecret:      []byte("acceptance-signing-key-32-bytes!"),
		anonKey:        anonKey,
		serviceRoleKey: serviceRoleKey,
		authUsers:      make(map[string]*authUser),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/v1/signup", p.handleSignUp)
	mux.HandleFunc("POST /auth/v1/token", p.handleToken)
	mux.HandleFunc("GET /auth/v1/user", p.handleGetUser)
	mux.HandleFunc("PUT /auth/v1/admin/users/{id}", p.handleConfirm)
	mux.HandleFunc("POST /rest/v1/users", p.handleInsertUserRow)
	mux.HandleFunc("/rest/v1/notes", p.handleNotes)

	p.server = httptest.NewServer(mux)
	return p
}

func (p *fakeProvider) URL() string {
	return p.server.URL
}

func (p *fakeProvider) Close() {
	p.server.Close()
}

func (p *fakeProvider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.authUsers = make(map[string]*authUser)
	p.userRows = nil
	p.noteRows = nil
}

// UnconfirmEmail flips a user back to unconfirmed, bypassing the API.
func (p *fakeProvider) UnconfirmEmail(email string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if u, ok := p.authUsers[email]; ok {
		u.ConfirmedAt = nil
	}
}

// UserRowCount reports how many mirrored user rows were inserted.
func (p *fakeProvider) UserRowCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.userRows)
}

func (p *fakeProvider) issueToken(u *authUser) string {
	claims := jwt.MapClaims{
		"sub":   u.ID,
		"email": u.Email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.jwtSecret)
	return signed
}

func (p *fakeProvider) userFromToken(r *http.Request) *authUser {
	header := r.Header.Get("Authorization")
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return nil
	}

	token, err := jwt.Parse(raw, func(*jwt.Token) (any, error) {
		return p.jwtSecret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return nil
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return nil
	}

	for _, u := range p.authUsers {
		if u.ID == sub {
			return u
		}
	}
	return nil
}

func (p *fakeProvider) isServiceRole(r *http.Request) bool {
	return r.Header.Get("apikey") == p.serviceRoleKey
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func authError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, map[string]string{"error_code": code, "msg": msg})
}

func (p *fakeProvider) userJSON(u *authUser) map[string]any {
	return map[string]any{
		"id":                 u.ID,
		"email":              u.Email,
		"email_confirmed_at": u.ConfirmedAt,
		"created_at":         u.CreatedAt,
	}
}

func (p *fakeProvider) handleSignUp(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		authError(w, http.StatusBadRequest, "bad_json", "could not parse request body")
		return
	}

	if _, exists := p.authUsers[creds.Email]; exists {
		authError(w, http.StatusUnprocessableEntity, "user_already_exists", "User already registered")
		return
	}

	u := &authUser{
		ID:        uuid.NewString(),
		Email:     creds.Email,
		Password:  creds.Password,
		CreatedAt: time.Now().UTC(),
	}
	p.authUsers[creds.Email] = u

	// Confirmation pending: a bare user object, no session.
	writeJSON(w, http.StatusOK, p.userJSON(u))
}

func (p *fakeProvider) handleToken(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if r.URL.Query().Get("grant_type") != "password" {
		authError(w, http.StatusBadRequest, "unsupported_grant_type", "unsupported grant type")
		return
	}

	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		authError(w, http.StatusBadRequest, "bad_json", "could not parse request body")
		return
	}

	u, ok := p.authUsers[creds.Email]
	if !ok || u.Password != creds.Password {
		authError(w, http.StatusBadRequest, "invalid_credentials", "Invalid login credentials")
		return
	}

	if u.ConfirmedAt == nil {
		authError(w, http.StatusBadRequest, "email_not_confirmed", "Email not confirmed")
		return
	}

	now := time.Now()
	writeJSON(w, http.StatusOK, map[string]any{
		"access_token":  p.issueToken(u),
		"token_type":    "bearer",
		"refresh_token": uuid.NewString(),
		"expires_in":    3600,
		"expires_at":    now.Add(time.Hour).Unix(),
		"user":          p.userJSON(u),
	})
}

func (p *fakeProvider) handleGetUser(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()

	u := p.userFromToken(r)
	if u == nil {
		authError(w, http.StatusUnauthorized, "bad_jwt", "invalid JWT")
		return
	}

	writeJSON(w, http.StatusOK, p.userJSON(u))
}

func (p *fakeProvider) handleConfirm(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.isServiceRole(r) {
		authError(w, http.StatusForbidden, "not_admin", "service role required")
		return
	}

	id := r.PathValue("id")
	for _, u := range p.authUsers {
		if u.ID == id {
			now := time.Now().UTC()
			u.ConfirmedAt = &now
			writeJSON(w, http.StatusOK, p.userJSON(u))
			return
		}
	}

	authError(w, http.StatusNotFound, "user_not_found", "User not found")
}

func (p *fakeProvider) handleInsertUserRow(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var row map[string]any
	if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid body"})
		return
	}

	p.userRows = append(p.userRows, row)
	writeJSON(w, http.StatusCreated, []map[string]any{row})
}

func (p *fakeProvider) handleNotes(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch r.Method {
	case http.MethodPost:
		p.insertNote(w, r)
	case http.MethodGet:
		p.selectNotes(w, r)
	case http.MethodPatch:
		p.updateNotes(w, r)
	case http.MethodDelete:
		p.deleteNotes(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// eqFilter returns the value of an eq filter on column, empty when absent.
func eqFilter(r *http.Request, column string) string {
	v := r.URL.Query().Get(column)
	if after, ok := strings.CutPrefix(v, "eq."); ok {
		return after
	}
	return ""
}

func (p *fakeProvider) matchNotes(r *http.Request) []noteRow {
	id := eqFilter(r, "id")
	userID := eqFilter(r, "user_id")

	var matched []noteRow
	for _, n := range p.noteRows {
		if id != "" && n.ID != id {
			continue
		}
		if userID != "" && n.UserID != userID {
			continue
		}
		matched = append(matched, n)
	}
	return matched
}

func (p *fakeProvider) insertNote(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID    string    `json:"user_id"`
		Title     string    `json:"title"`
		Content   string    `json:"content"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid body"})
		return
	}

	row := noteRow{
		ID:        uuid.NewString(),
		UserID:    payload.UserID,
		Title:     payload.Title,
		Content:   payload.Content,
		CreatedAt: payload.CreatedAt,
		UpdatedAt: payload.UpdatedAt,
	}
	p.noteRows = append(p.noteRows, row)

	writeJSON(w, http.StatusCreated, []noteRow{row})
}

func (p *fakeProvider) selectNotes(w http.ResponseWriter, r *http.Request) {
	matched := p.matchNotes(r)

	if r.URL.Query().Get("order") == "created_at.desc" {
		sort.Slice(matched, func(i, j int) bool {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		})
	}

	if matched == nil {
		matched = []noteRow{}
	}
	writeJSON(w, http.StatusOK, matched)
}

func (p *fakeProvider) updateNotes(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid body"})
		return
	}

	id := eqFilter(r, "id")
	userID := eqFilter(r, "user_id")

	updated := []noteRow{}
	for i := range p.noteRows {
		n := &p.noteRows[i]
		if id != "" && n.ID != id {
			continue
		}
		if userID != "" && n.UserID != userID {
			continue
		}

		if v, ok := fields["title"].(string); ok {
			n.Title = v
		}
		if v, ok := fields["content"].(string); ok {
			n.Content = v
		}
		if v, ok := fields["updated_at"].(string); ok {
			if ts, err := time.Parse(time.RFC3339Nano, v); err == nil {
				n.UpdatedAt = ts
			}
		}
		updated = append(updated, *n)
	}

	writeJSON(w, http.StatusOK, updated)
}

func (p *fakeProvider) deleteNotes(w http.ResponseWriter, r *http.Request) {
	id := eqFilter(r, "id")
	userID := eqFilter(r, "user_id")

	kept := p.noteRows[:0]
	for _, n := range p.noteRows {
		if (id == "" || n.ID == id) && (userID == "" || n.UserID == userID) {
			continue
		}
		kept = append(kept, n)
	}
	p.noteRows = kept

	w.WriteHeader(http.StatusNoContent)
}
