package domain

import "context"

// OnboardingRequest is the finish-onboarding payload. Allergies and
// UserNote are optional; the literal "None", the empty string, and absence
// all normalize to no allergies.
type OnboardingRequest struct {
	UserID            string   `json:"user_id" validate:"required"`
	Name              string   `json:"name" validate:"required"`
	Weight            float64  `json:"weight" validate:"required,gt=0"`
	Height            float64  `json:"height" validate:"required,gt=0"`
	DOB               string   `json:"dob" validate:"required"`
	Goal              string   `json:"goal" validate:"required"`
	DietaryPreference string   `json:"dietaryPreference" validate:"required"`
	RegularFoods      []string `json:"selectedRegularFoods" validate:"required"`
	Allergies         *string  `json:"allergies,omitempty"`
	UserNote          *string  `json:"userNote,omitempty"`
}

// OnboardingUsecase sequences the dependent writes of onboarding
// completion. The sequence is not transactional: a failure partway leaves
// the earlier writes committed.
type OnboardingUsecase interface {
	Complete(ctx context.Context, req *OnboardingRequest) error
}
