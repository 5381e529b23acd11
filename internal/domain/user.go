package domain

import "time"

// User is the slice of the provider-owned identity record this service
// consumes. The provider's credential store stays authoritative.
type User struct {
	ID               string     `json:"id"`
	Email            string     `json:"email"`
	EmailConfirmedAt *time.Time `json:"email_confirmed_at"`
}

// IsEmailConfirmed reports whether the provider has confirmed the user's email.
func (u *User) IsEmailConfirmed() bool {
	return u.EmailConfirmedAt != nil
}

// Session is the short-lived credential issued by the provider on sign-in or
// sign-up. It is never persisted here; the caller resupplies the access token
// as a bearer credential.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
	ExpiresIn    int    `json:"expires_in"`
}

// AuthResult is the outcome of a provider sign-up or sign-in call.
// Session may be nil on sign-up when the provider requires email confirmation
// before issuing one.
type AuthResult struct {
	User    *User
	Session *Session
}

// UserRecord is the mirrored row in the application's users table, written
// during registration for bookkeeping. PasswordHash is never used for
// authentication.
type UserRecord struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	FullName     *string   `json:"full_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
