package domain

import (
	"context"
	"time"
)

// Goal is read-only reference data; names are stored title-cased
// ("Lose Weight", "Vegetarian").
type Goal struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UserGoal is the historical goal assignment. At most one row per user is
// active at a time, enforced by deactivating all prior rows before each
// insert rather than by a database constraint.
type UserGoal struct {
	UserID    string    `json:"user_id"`
	GoalID    int64     `json:"goal_id"`
	StartedAt time.Time `json:"started_at"`
	Active    bool      `json:"active"`
}

type GoalRepository interface {
	// GetByName matches the title-cased goal name exactly; nil, nil when
	// no such goal exists.
	GetByName(ctx context.Context, name string) (*Goal, error)
	// DeactivateAll sets active=false on every goal row of the user.
	DeactivateAll(ctx context.Context, userID string) error
	InsertActive(ctx context.Context, userID string, goalID int64, startedAt time.Time) error
}
