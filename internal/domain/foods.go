package domain

import "context"

// RegularFoods is the per-user list of routinely eaten foods, upserted
// wholesale on the user id (insert-or-replace).
type RegularFoods struct {
	UserID    string   `json:"user_id"`
	Foods     []string `json:"foods"`
	UpdatedAt string   `json:"updated_at"`
}

type RegularFoodsRepository interface {
	Upsert(ctx context.Context, userID string, foods []string) error
	// Get returns an empty slice when the user has no row.
	Get(ctx context.Context, userID string) ([]string, error)
}

// FoodRecommendation is the recommend-foods payload: what the user already
// eats plus what the model suggests on top.
type FoodRecommendation struct {
	RegularFoods []string
	RecomFoods   []string
}
