package supabase

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// User is the provider identity record as returned by the auth endpoints.
type User struct {
	ID               string     `json:"id"`
	Email            string     `json:"email"`
	EmailConfirmedAt *time.Time `json:"email_confirmed_at"`
	CreatedAt        *time.Time `json:"created_at"`
}

// Session is the credential set issued on sign-in or sign-up.
type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at"`
}

// AuthData is the normalized outcome of a sign-up or sign-in call. Session is
// nil when the provider withheld one (sign-up pending email confirmation).
type AuthData struct {
	User    *User
	Session *Session
}

// authPayload covers both response shapes of the auth endpoints: a session
// with an embedded user (token endpoint, confirmed sign-up) and a bare user
// object (sign-up pending confirmation).
type authPayload struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at"`
	User         *User  `json:"user"`

	ID               string     `json:"id"`
	Email            string     `json:"email"`
	EmailConfirmedAt *time.Time `json:"email_confirmed_at"`
	CreatedAt        *time.Time `json:"created_at"`
}

func (p *authPayload) toAuthData() *AuthData {
	data := &AuthData{}

	if p.AccessToken != "" {
		data.Session = &Session{
			AccessToken:  p.AccessToken,
			TokenType:    p.TokenType,
			RefreshToken: p.RefreshToken,
			ExpiresIn:    p.ExpiresIn,
			ExpiresAt:    p.ExpiresAt,
		}
	}

	if p.User != nil {
		data.User = p.User
	} else if p.ID != "" {
		data.User = &User{
			ID:               p.ID,
			Email:            p.Email,
			EmailConfirmedAt: p.EmailConfirmedAt,
			CreatedAt:        p.CreatedAt,
		}
	}

	return data
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp registers a new identity with the provider.
func (c *Client) SignUp(ctx context.Context, email, password string) (*AuthData, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/v1/signup", nil, "", credentials{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	var payload authPayload
	if err := c.send(req, &payload); err != nil {
		return nil, err
	}
	return payload.toAuthData(), nil
}

// SignInWithPassword exchanges email/password credentials for a session.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*AuthData, error) {
	query := url.Values{"grant_type": []string{"password"}}
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/v1/token", query, "", credentials{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	var payload authPayload
	if err := c.send(req, &payload); err != nil {
		return nil, err
	}
	return payload.toAuthData(), nil
}

// GetUser introspects an access token and returns the identity it belongs to.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*User, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/auth/v1/user", nil, accessToken, nil)
	if err != nil {
		return nil, err
	}

	var user User
	if err := c.send(req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ConfirmUserEmail marks a user's email as confirmed through the admin API.
// Only a client built from the service-role key is authorized to call it.
func (c *Client) ConfirmUserEmail(ctx context.Context, userID string) error {
	body := map[string]bool{"email_confirm": true}
	req, err := c.newRequest(ctx, http.MethodPut, "/auth/v1/admin/users/"+userID, nil, "", body)
	if err != nil {
		return err
	}
	return c.send(req, nil)
}
