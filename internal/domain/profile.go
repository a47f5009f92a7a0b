package domain

import "context"

// Profile is the one-row-per-user profile in the hosted database. A stub
// row holding only the id is inserted at sign-up; onboarding fills in the
// rest. CreatedAt is written once by the stub insert and never touched
// again; onboarding updates UpdatedAt instead.
type Profile struct {
	ID        string   `json:"id"`
	Name      string   `json:"name,omitempty"`
	Weight    float64  `json:"weight,omitempty"` // kg
	Height    float64  `json:"height,omitempty"` // cm
	Age       int      `json:"age,omitempty"`
	DietType  string   `json:"diet_type,omitempty"`
	Allergies []string `json:"allergies,omitempty"`
	UserNote  string   `json:"user_note,omitempty"`
	CreatedAt string   `json:"created_at,omitempty"`
	UpdatedAt string   `json:"updated_at,omitempty"`
}

// ProfileUpdate carries the onboarding fields written to an existing row.
// CreatedAt is not part of the update; onboarding never rewrites it.
type ProfileUpdate struct {
	Name      string   `json:"name"`
	Weight    float64  `json:"weight"`
	Height    float64  `json:"height"`
	Age       int      `json:"age"`
	DietType  string   `json:"diet_type"`
	Allergies []string `json:"allergies"`
	UserNote  *string  `json:"user_note"`
	UpdatedAt string   `json:"updated_at"`
}

type ProfileRepository interface {
	// CreateStub inserts the id-only row that sign-up leaves behind.
	CreateStub(ctx context.Context, userID string) error
	Update(ctx context.Context, userID string, update *ProfileUpdate) error
	// Get returns nil, nil when no row exists for the id.
	Get(ctx context.Context, userID string) (*Profile, error)
}
