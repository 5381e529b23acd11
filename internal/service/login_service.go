package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/notesfe/notes-api/internal/domain"
	"github.com/notesfe/notes-api/internal/dto"
	"github.com/notesfe/notes-api/internal/repository"
	"github.com/notesfe/notes-api/internal/utils"
	"github.com/notesfe/notes-api/pkg/supabase"
	"go.uber.org/zap"
)

const emailNotConfirmedCode = "email_not_confirmed"

// loginService implements LoginService over the login repository
type loginService struct {
	repo       repository.LoginRepository
	logger     *zap.Logger
	bcryptCost int
}

// NewLoginService creates a new login service
func NewLoginService(repo repository.LoginRepository, logger *zap.Logger, bcryptCost int) LoginService {
	return &loginService{repo: repo, logger: logger, bcryptCost: bcryptCost}
}

// Register creates a provider identity and mirrors a users row for
// bookkeeping. The two steps are not atomic: a failure after sign-up leaves
// an orphaned auth identity, which is accepted.
func (s *loginService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, domain.NewValidation("Email and password are required")
	}
	if !utils.ValidatePassword(req.Password) {
		return nil, domain.NewValidation("Password must be at least 6 characters long")
	}

	email := utils.SanitizeEmail(req.Email)
	if !utils.ValidateEmail(email) {
		return nil, domain.NewValidation("Invalid email format")
	}

	result, err := s.repo.SignUp(ctx, email, req.Password)
	if err != nil {
		s.logger.Error("register: sign-up failed", zap.String("email", email), zap.Error(err))
		if errors.Is(err, repository.ErrNoUser) {
			return nil, domain.NewUpstream(http.StatusBadRequest, "Could not create user with the authentication provider", err)
		}
		return nil, upstreamError(err, http.StatusBadRequest, "Registration failed")
	}

	// Best effort: confirmation failures are logged, never fatal.
	if !result.User.IsEmailConfirmed() {
		if err := s.repo.ConfirmUserEmail(ctx, result.User.ID); err != nil {
			s.logger.Warn("register: email auto-confirmation failed",
				zap.String("user_id", result.User.ID), zap.Error(err))
		}
	}

	passwordHash, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		s.logger.Error("register: password hashing failed", zap.Error(err))
		return nil, domain.NewConfig("Failed to process registration", err)
	}

	now := time.Now().UTC()
	record := &domain.UserRecord{
		ID:           result.User.ID,
		Email:        email,
		PasswordHash: passwordHash,
		FullName:     req.FullName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var sessionToken string
	if result.Session != nil {
		sessionToken = result.Session.AccessToken
	}

	if _, err := s.repo.CreateUserRecord(ctx, record, sessionToken); err != nil {
		s.logger.Error("register: user record insert failed",
			zap.String("user_id", result.User.ID), zap.Error(err))
		if errors.Is(err, repository.ErrServiceKeyRequired) {
			return nil, domain.NewConfig("Server configuration error: cannot save user data", err)
		}
		return nil, upstreamError(err, http.StatusBadRequest, "Failed to save user data")
	}

	s.logger.Info("user registered", zap.String("user_id", result.User.ID), zap.String("email", email))

	return &dto.RegisterResponse{
		Success: true,
		User:    result.User,
		Message: "User registered successfully",
	}, nil
}

// Login authenticates against the provider and hands the session back
func (s *loginService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, domain.NewValidation("Email and password are required")
	}

	email := utils.SanitizeEmail(req.Email)

	result, err := s.repo.SignInWithPassword(ctx, email, req.Password)
	if err != nil {
		s.logger.Error("login failed", zap.String("email", email), zap.Error(err))

		if isEmailNotConfirmed(err) {
			return nil, domain.NewEmailUnconfirmed("Please confirm your email before signing in. Check your inbox.")
		}
		if errors.Is(err, repository.ErrNoSession) {
			return nil, domain.NewAuth("Failed to obtain an authentication session", err)
		}
		return nil, upstreamError(err, http.StatusUnauthorized, "Invalid email or password")
	}

	s.logger.Info("login succeeded", zap.String("email", email))

	return &dto.LoginResponse{
		Success: true,
		User:    result.User,
		Session: dto.SessionInfo{
			AccessToken:  result.Session.AccessToken,
			RefreshToken: result.Session.RefreshToken,
			ExpiresAt:    result.Session.ExpiresAt,
			ExpiresIn:    result.Session.ExpiresIn,
		},
	}, nil
}

// GetUser resolves a bearer token to the provider identity it belongs to
func (s *loginService) GetUser(ctx context.Context, accessToken string) (*dto.UserResponse, error) {
	user, err := s.repo.GetUserByToken(ctx, accessToken)
	if err != nil {
		s.logger.Error("get user failed", zap.Error(err))
		if errors.Is(err, repository.ErrNoUser) {
			return nil, domain.NewAuth("Invalid or expired token", err)
		}
		// A provider response rejecting the token means the credential is
		// bad; anything else is the provider call itself failing.
		if _, ok := supabase.AsAPIError(err); ok {
			return nil, domain.NewAuth("Invalid or expired token", err)
		}
		return nil, domain.NewUpstream(http.StatusUnauthorized, "Error validating authentication token", err)
	}

	return &dto.UserResponse{Success: true, User: user}, nil
}

// isEmailNotConfirmed recognizes the provider's unconfirmed-email rejection
// by error code, falling back to the message for older provider versions.
func isEmailNotConfirmed(err error) bool {
	apiErr, ok := supabase.AsAPIError(err)
	if !ok {
		return false
	}
	return apiErr.Code == emailNotConfirmedCode || strings.Contains(apiErr.Message, "Email not confirmed")
}
