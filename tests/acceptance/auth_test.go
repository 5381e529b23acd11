package acceptance

import (
	"net/http"

	"github.com/notesfe/notes-api/internal/dto"
)

func (s *Suite) TestRegister_Success() {
	resp := s.doJSON(http.MethodPost, "/api/register", "", dto.RegisterRequest{
		Email:    "new@example.com",
		Password: "Password123",
	})

	var regResp dto.RegisterResponse
	s.decode(resp, &regResp)

	s.Equal(http.StatusCreated, resp.StatusCode)
	s.True(regResp.Success)
	s.Equal("new@example.com", regResp.User.Email)
	s.NotEmpty(regResp.User.ID)
	s.NotEmpty(regResp.Message)

	s.Equal(1, s.Provider.UserRowCount(), "mirrored user row should be inserted")
}

func (s *Suite) TestRegister_NormalizesEmail() {
	resp := s.doJSON(http.MethodPost, "/api/register", "", dto.RegisterRequest{
		Email:    "  Mixed.Case@Example.COM  ",
		Password: "Password123",
	})

	var regResp dto.RegisterResponse
	s.decode(resp, &regResp)

	s.Equal(http.StatusCreated, resp.StatusCode)
	s.Equal("mixed.case@example.com", regResp.User.Email)
}

func (s *Suite) TestRegister_MissingFields() {
	resp := s.doJSON(http.MethodPost, "/api/register", "", dto.RegisterRequest{
		Email: "new@example.com",
	})

	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("Email and password are required", s.decodeError(resp).Error)
}

func (s *Suite) TestRegister_ShortPassword() {
	resp := s.doJSON(http.MethodPost, "/api/register", "", dto.RegisterRequest{
		Email:    "new@example.com",
		Password: "short",
	})

	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("Password must be at least 6 characters long", s.decodeError(resp).Error)
}

func (s *Suite) TestRegister_InvalidEmail() {
	resp := s.doJSON(http.MethodPost, "/api/register", "", dto.RegisterRequest{
		Email:    "not-an-email",
		Password: "Password123",
	})

	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("Invalid email format", s.decodeError(resp).Error)
}

func (s *Suite) TestRegister_DuplicateEmail() {
	s.registerUser("dup@example.com", "Password123")

	resp := s.doJSON(http.MethodPost, "/api/register", "", dto.RegisterRequest{
		Email:    "dup@example.com",
		Password: "Password123",
	})

	// Provider-supplied status and message pass through.
	s.Equal(http.StatusUnprocessableEntity, resp.StatusCode)
	s.Equal("User already registered", s.decodeError(resp).Error)
}

func (s *Suite) TestLogin_Success() {
	s.registerUser("login@example.com", "Password123")

	resp := s.doJSON(http.MethodPost, "/api/login", "", dto.LoginRequest{
		Email:    "login@example.com",
		Password: "Password123",
	})

	var loginResp dto.LoginResponse
	s.decode(resp, &loginResp)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.True(loginResp.Success)
	s.Equal("login@example.com", loginResp.User.Email)
	s.NotEmpty(loginResp.Session.AccessToken)
	s.NotEmpty(loginResp.Session.RefreshToken)
	s.NotZero(loginResp.Session.ExpiresIn)
	s.NotZero(loginResp.Session.ExpiresAt)
}

func (s *Suite) TestLogin_WrongPassword() {
	s.registerUser("login@example.com", "Password123")

	resp := s.doJSON(http.MethodPost, "/api/login", "", dto.LoginRequest{
		Email:    "login@example.com",
		Password: "WrongPassword",
	})

	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("Invalid login credentials", s.decodeError(resp).Error)
}

func (s *Suite) TestLogin_MissingFields() {
	resp := s.doJSON(http.MethodPost, "/api/login", "", dto.LoginRequest{
		Email: "login@example.com",
	})

	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("Email and password are required", s.decodeError(resp).Error)
}

func (s *Suite) TestLogin_UnconfirmedEmail() {
	s.registerUser("pending@example.com", "Password123")
	s.Provider.UnconfirmEmail("pending@example.com")

	resp := s.doJSON(http.MethodPost, "/api/login", "", dto.LoginRequest{
		Email:    "pending@example.com",
		Password: "Password123",
	})

	s.Equal(http.StatusForbidden, resp.StatusCode)
	s.Contains(s.decodeError(resp).Error, "confirm your email")
}

func (s *Suite) TestGetUser_Success() {
	token := s.authToken("whoami@example.com")

	resp := s.doJSON(http.MethodGet, "/api/getUser", token, nil)

	var userResp dto.UserResponse
	s.decode(resp, &userResp)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.True(userResp.Success)
	s.Equal("whoami@example.com", userResp.User.Email)
}

func (s *Suite) TestGetUser_MissingHeader() {
	resp := s.doJSON(http.MethodGet, "/api/getUser", "", nil)

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	s.Equal("Authorization token required", s.decodeError(resp).Error)
}

func (s *Suite) TestGetUser_InvalidToken() {
	resp := s.doJSON(http.MethodGet, "/api/getUser", "garbage-token", nil)

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	s.Equal("Invalid or expired token", s.decodeError(resp).Error)
}
