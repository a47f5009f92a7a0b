package domain

import "context"

// Generator is the text-completion side of the generative API: one prompt
// in, raw model text out.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// MealProfile is the profile snapshot predict-meals works from. It arrives
// in the request body because prediction runs during onboarding, before
// the profile row is populated.
type MealProfile struct {
	Name              string
	Weight            float64
	Height            float64
	DOB               string
	Goal              string
	DietaryPreference string
}

// Meal entries are passed through from the model verbatim: the expected
// shape is {name, calories, description} but individual entries are not
// schema-validated.
type Meal map[string]any

type MealUsecase interface {
	PredictMeals(ctx context.Context, profile *MealProfile) ([]Meal, error)
	RecommendFoods(ctx context.Context, userID string) (*FoodRecommendation, error)
}
