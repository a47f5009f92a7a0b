package supabase

import (
	"context"
	"net/http"
	"net/url"

	"go-diettrack-backend/internal/domain"
)

type profileRepo struct {
	client *Client
}

func NewProfileRepository(client *Client) domain.ProfileRepository {
	return &profileRepo{client: client}
}

func (r *profileRepo) CreateStub(ctx context.Context, userID string) error {
	body := map[string]any{"id": userID}
	return r.client.rest(ctx, http.MethodPost, "profiles", nil, "return=minimal", body, nil)
}

func (r *profileRepo) Update(ctx context.Context, userID string, update *domain.ProfileUpdate) error {
	query := url.Values{}
	query.Set("id", "eq."+userID)
	return r.client.rest(ctx, http.MethodPatch, "profiles", query, "return=minimal", update, nil)
}

func (r *profileRepo) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	query := url.Values{}
	query.Set("id", "eq."+userID)
	query.Set("select", "id,name,weight,height,age,diet_type,allergies,user_note,created_at,updated_at")
	query.Set("limit", "1")

	var rows []domain.Profile
	if err := r.client.rest(ctx, http.MethodGet, "profiles", query, "", nil, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}
