package supabase

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"go-diettrack-backend/internal/domain"
)

type goalRepo struct {
	client *Client
}

func NewGoalRepository(client *Client) domain.GoalRepository {
	return &goalRepo{client: client}
}

func (r *goalRepo) GetByName(ctx context.Context, name string) (*domain.Goal, error) {
	query := url.Values{}
	query.Set("name", "eq."+name)
	query.Set("select", "id,name")
	query.Set("limit", "1")

	var rows []domain.Goal
	if err := r.client.rest(ctx, http.MethodGet, "goals", query, "", nil, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *goalRepo) DeactivateAll(ctx context.Context, userID string) error {
	query := url.Values{}
	query.Set("user_id", "eq."+userID)
	body := map[string]any{"active": false}
	return r.client.rest(ctx, http.MethodPatch, "user_goals", query, "return=minimal", body, nil)
}

func (r *goalRepo) InsertActive(ctx context.Context, userID string, goalID int64, startedAt time.Time) error {
	body := map[string]any{
		"user_id":    userID,
		"goal_id":    goalID,
		"started_at": startedAt.UTC().Format(time.RFC3339),
		"active":     true,
	}
	return r.client.rest(ctx, http.MethodPost, "user_goals", nil, "return=minimal", body, nil)
}
