package domain

import "context"

// User is the identity issued by the hosted auth service. The UUID is
// minted by Supabase; no credential is ever stored locally.
type User struct {
	ID    string `json:"id"` // Supabase UUID
	Email string `json:"email"`
}

// Session is the result of a password sign-in.
type Session struct {
	User        *User
	AccessToken string
}

// IdentityProvider wraps the hosted auth service's sign-up and sign-in.
type IdentityProvider interface {
	// SignUp registers the credentials and returns the new user, or nil
	// when the service accepted the request but issued no user.
	SignUp(ctx context.Context, email, password string) (*User, error)
	// SignInWithPassword exchanges credentials for a session. A 4xx from
	// the service yields (nil, nil): invalid credentials, not an outage.
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
}

// AuthResult is the envelope payload for register/login.
type AuthResult struct {
	UserID      string
	AccessToken string // empty for register
}

type AuthUsecase interface {
	Register(ctx context.Context, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// Profile returns the signed-in user's profile row.
	Profile(ctx context.Context, userID string) (*Profile, error)
}
