package supabase

import (
	"context"
	"net/http"
	"net/url"

	"go-diettrack-backend/internal/domain"
)

type healthScoreRepo struct {
	client *Client
}

func NewHealthScoreRepository(client *Client) domain.HealthScoreRepository {
	return &healthScoreRepo{client: client}
}

func (r *healthScoreRepo) Latest(ctx context.Context, userID string) (*domain.HealthScore, error) {
	query := url.Values{}
	query.Set("user_id", "eq."+userID)
	query.Set("select", "id,user_id,date,score")
	query.Set("order", "date.desc")
	query.Set("limit", "1")

	var rows []domain.HealthScore
	if err := r.client.rest(ctx, http.MethodGet, "health_scores", query, "", nil, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *healthScoreRepo) HasAny(ctx context.Context, userID string) (bool, error) {
	query := url.Values{}
	query.Set("user_id", "eq."+userID)
	query.Set("select", "id")
	query.Set("limit", "1")

	var rows []struct {
		ID int64 `json:"id"`
	}
	if err := r.client.rest(ctx, http.MethodGet, "health_scores", query, "", nil, &rows); err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}
