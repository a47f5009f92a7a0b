package domain

import "context"

// HealthScore is a time-series row per user, read-only to this system.
type HealthScore struct {
	ID     int64   `json:"id"`
	UserID string  `json:"user_id"`
	Date   string  `json:"date"`
	Score  float64 `json:"score"`
}

type HealthScoreRepository interface {
	// Latest returns the row with the most recent date, or nil, nil when
	// the user has none.
	Latest(ctx context.Context, userID string) (*HealthScore, error)
	HasAny(ctx context.Context, userID string) (bool, error)
}

// HealthScoreStatus is the check-hs payload.
type HealthScoreStatus struct {
	Exists bool
	Value  float64
}

type HealthScoreUsecase interface {
	Check(ctx context.Context, userID string) (*HealthScoreStatus, error)
}
