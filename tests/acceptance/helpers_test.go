package acceptance

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/notesfe/notes-api/internal/dto"
)

func (s *Suite) doJSON(method, path, bearer string, body any) *http.Response {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, s.BaseURL+path, &buf)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	return resp
}

func (s *Suite) decode(resp *http.Response, out any) {
	defer resp.Body.Close()
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
}

func (s *Suite) decodeError(resp *http.Response) dto.ErrorResponse {
	var errResp dto.ErrorResponse
	s.decode(resp, &errResp)
	return errResp
}

// registerUser creates a user through the public API. The service role key is
// configured in the suite, so the email ends up auto-confirmed.
func (s *Suite) registerUser(email, password string) {
	resp := s.doJSON(http.MethodPost, "/api/register", "", dto.RegisterRequest{
		Email:    email,
		Password: password,
	})
	defer resp.Body.Close()
	s.Require().Equal(http.StatusCreated, resp.StatusCode, "registration should succeed")
}

// loginUser exchanges credentials for an access token.
func (s *Suite) loginUser(email, password string) string {
	resp := s.doJSON(http.MethodPost, "/api/login", "", dto.LoginRequest{
		Email:    email,
		Password: password,
	})

	var loginResp dto.LoginResponse
	s.decode(resp, &loginResp)
	s.Require().Equal(http.StatusOK, resp.StatusCode, "login should succeed")
	s.Require().NotEmpty(loginResp.Session.AccessToken)
	return loginResp.Session.AccessToken
}

// authToken registers a fresh user and signs it in.
func (s *Suite) authToken(email string) string {
	s.registerUser(email, "Password123")
	return s.loginUser(email, "Password123")
}
