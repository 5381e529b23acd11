package repository

import (
	"context"
	"fmt"

	"github.com/notesfe/notes-api/internal/domain"
	"github.com/notesfe/notes-api/pkg/supabase"
	"go.uber.org/zap"
)

const usersTable = "users"

// loginRepository implements LoginRepository over the provider's auth API.
// admin is nil when no service-role key is configured.
type loginRepository struct {
	client *supabase.Client
	admin  *supabase.Client
	logger *zap.Logger
}

// NewLoginRepository creates a provider-backed login repository
func NewLoginRepository(client, admin *supabase.Client, logger *zap.Logger) LoginRepository {
	return &loginRepository{client: client, admin: admin, logger: logger}
}

// SignUp registers a new identity with the provider
func (r *loginRepository) SignUp(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	data, err := r.client.SignUp(ctx, email, password)
	if err != nil {
		r.logger.Error("provider sign-up failed", zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("failed to sign up: %w", err)
	}

	if data.User == nil {
		r.logger.Error("provider sign-up returned no user", zap.String("email", email))
		return nil, ErrNoUser
	}

	return toAuthResult(data), nil
}

// SignInWithPassword exchanges credentials for a session
func (r *loginRepository) SignInWithPassword(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	data, err := r.client.SignInWithPassword(ctx, email, password)
	if err != nil {
		r.logger.Error("provider sign-in failed", zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("failed to sign in: %w", err)
	}

	if data.Session == nil {
		r.logger.Error("provider sign-in returned no session", zap.String("email", email))
		return nil, ErrNoSession
	}

	return toAuthResult(data), nil
}

// GetUserByToken introspects an access token with the provider
func (r *loginRepository) GetUserByToken(ctx context.Context, accessToken string) (*domain.User, error) {
	user, err := r.client.GetUser(ctx, accessToken)
	if err != nil {
		r.logger.Error("provider token introspection failed", zap.Error(err))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil || user.ID == "" {
		return nil, ErrNoUser
	}

	return toUser(user), nil
}

// ConfirmUserEmail marks the email confirmed through the admin API. Skipped
// silently when no privileged client is configured.
func (r *loginRepository) ConfirmUserEmail(ctx context.Context, userID string) error {
	if r.admin == nil {
		return nil
	}

	if err := r.admin.ConfirmUserEmail(ctx, userID); err != nil {
		r.logger.Error("admin email confirmation failed", zap.String("user_id", userID), zap.Error(err))
		return fmt.Errorf("failed to confirm email: %w", err)
	}

	r.logger.Info("email auto-confirmed", zap.String("user_id", userID))
	return nil
}

// CreateUserRecord inserts the mirrored users row. The privileged client
// bypasses row-level security; without one the insert runs under the new
// session's token, and without either the deployment is misconfigured.
func (r *loginRepository) CreateUserRecord(ctx context.Context, record *domain.UserRecord, sessionToken string) (*domain.UserRecord, error) {
	client, bearer := r.client, sessionToken
	if r.admin != nil {
		client, bearer = r.admin, ""
	} else if sessionToken == "" {
		r.logger.Error("cannot insert user record: no service role key and no session token",
			zap.String("user_id", record.ID))
		return nil, ErrServiceKeyRequired
	}

	var rows []domain.UserRecord
	if err := client.Insert(ctx, usersTable, bearer, record, &rows); err != nil {
		r.logger.Error("user record insert failed", zap.String("user_id", record.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to insert user record: %w", err)
	}

	if len(rows) == 0 {
		r.logger.Error("user record insert returned no rows", zap.String("user_id", record.ID))
		return nil, ErrNotFound
	}

	return &rows[0], nil
}

func toUser(u *supabase.User) *domain.User {
	return &domain.User{
		ID:               u.ID,
		Email:            u.Email,
		EmailConfirmedAt: u.EmailConfirmedAt,
	}
}

func toAuthResult(data *supabase.AuthData) *domain.AuthResult {
	result := &domain.AuthResult{}
	if data.User != nil {
		result.User = toUser(data.User)
	}
	if data.Session != nil {
		result.Session = &domain.Session{
			AccessToken:  data.Session.AccessToken,
			RefreshToken: data.Session.RefreshToken,
			ExpiresAt:    data.Session.ExpiresAt,
			ExpiresIn:    data.Session.ExpiresIn,
		}
	}
	return result
}
