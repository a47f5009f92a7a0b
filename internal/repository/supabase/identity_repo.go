package supabase

import (
	"context"

	"go-diettrack-backend/internal/domain"
)

type identityRepo struct {
	client *Client
}

func NewIdentityRepository(client *Client) domain.IdentityProvider {
	return &identityRepo{client: client}
}

// gotrueUser covers both GoTrue response shapes: sign-up returns the user
// at the top level, token grants nest it under "user".
type gotrueUser struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	AccessToken string `json:"access_token"`
	User        *struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

func (g *gotrueUser) user() *domain.User {
	if g.ID != "" {
		return &domain.User{ID: g.ID, Email: g.Email}
	}
	if g.User != nil && g.User.ID != "" {
		return &domain.User{ID: g.User.ID, Email: g.User.Email}
	}
	return nil
}

func (r *identityRepo) SignUp(ctx context.Context, email, password string) (*domain.User, error) {
	body := map[string]any{
		"email":    email,
		"password": password,
	}

	var out gotrueUser
	if _, err := r.client.authPost(ctx, "signup", r.client.serviceKey, body, &out); err != nil {
		return nil, err
	}
	return out.user(), nil
}

func (r *identityRepo) SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error) {
	body := map[string]any{
		"email":    email,
		"password": password,
	}

	var out gotrueUser
	status, err := r.client.authPost(ctx, "token?grant_type=password", r.client.anonKey, body, &out)
	if err != nil {
		// A 4xx means GoTrue rejected the credentials, which the caller
		// treats as invalid login rather than a service failure.
		if status >= 400 && status < 500 {
			return nil, nil
		}
		return nil, err
	}

	user := out.user()
	if user == nil {
		return nil, nil
	}
	return &domain.Session{User: user, AccessToken: out.AccessToken}, nil
}
