package supabase

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"go-diettrack-backend/internal/domain"
)

type foodsRepo struct {
	client *Client
}

func NewRegularFoodsRepository(client *Client) domain.RegularFoodsRepository {
	return &foodsRepo{client: client}
}

func (r *foodsRepo) Upsert(ctx context.Context, userID string, foods []string) error {
	if foods == nil {
		foods = []string{}
	}
	body := map[string]any{
		"user_id":    userID,
		"foods":      foods,
		"updated_at": time.Now().UTC().Format(time.RFC3339),
	}

	query := url.Values{}
	query.Set("on_conflict", "user_id")
	// merge-duplicates turns the insert into an upsert keyed on user_id
	return r.client.rest(ctx, http.MethodPost, "foods_regular", query,
		"resolution=merge-duplicates,return=minimal", body, nil)
}

func (r *foodsRepo) Get(ctx context.Context, userID string) ([]string, error) {
	query := url.Values{}
	query.Set("user_id", "eq."+userID)
	query.Set("select", "foods")
	query.Set("limit", "1")

	var rows []struct {
		Foods []string `json:"foods"`
	}
	if err := r.client.rest(ctx, http.MethodGet, "foods_regular", query, "", nil, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 || rows[0].Foods == nil {
		return []string{}, nil
	}
	return rows[0].Foods, nil
}
