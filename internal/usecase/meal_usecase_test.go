package usecase_test

import (
	"context"
	"testing"

	"go-diettrack-backend/internal/domain"
	"go-diettrack-backend/internal/usecase"
	"go-diettrack-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mealProfile() *domain.MealProfile {
	return &domain.MealProfile{
		Name:              "Asha",
		Weight:            62,
		Height:            165,
		DOB:               "2000-03-01",
		Goal:              "Vegetarian",
		DietaryPreference: "Vegetarian",
	}
}

func TestPredictMealsParsesFencedArray(t *testing.T) {
	gen := &FakeGenerator{Response: "```json\n[{\"name\":\"Dal Chawal\",\"calories\":420,\"description\":\"Lentils with rice\"}]\n```"}
	uc := usecase.NewMealUsecase(gen, new(MockProfileRepo), new(MockFoodsRepo))

	meals, err := uc.PredictMeals(context.Background(), mealProfile())
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, "Dal Chawal", meals[0]["name"])

	assert.Contains(t, gen.Prompt, "EXACTLY 10 foods")
	assert.Contains(t, gen.Prompt, "Dietary Preference: Vegetarian")
	assert.Contains(t, gen.Prompt, "Weight: 62 kg")
}

func TestPredictMealsNoJSONIsGenericFailure(t *testing.T) {
	gen := &FakeGenerator{Response: "Sorry, I cannot help with that."}
	uc := usecase.NewMealUsecase(gen, new(MockProfileRepo), new(MockFoodsRepo))

	_, err := uc.PredictMeals(context.Background(), mealProfile())
	require.Error(t, err)

	// Clients get the generic message; the cause stays wrapped for logs.
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Failed to generate meals", appErr.Message)
	assert.Error(t, appErr.Err)
}

func TestPredictMealsUpstreamFailureIsGeneric(t *testing.T) {
	gen := &FakeGenerator{Err: apperror.Unavailable("quota exceeded", nil)}
	uc := usecase.NewMealUsecase(gen, new(MockProfileRepo), new(MockFoodsRepo))

	_, err := uc.PredictMeals(context.Background(), mealProfile())
	require.Error(t, err)
	assert.Equal(t, "Failed to generate meals", err.Error())
}

func TestRecommendFoodsHappyPath(t *testing.T) {
	gen := &FakeGenerator{Response: `{"recomfoods": ["Poha", "Idli"]}`}
	profiles := new(MockProfileRepo)
	foods := new(MockFoodsRepo)
	uc := usecase.NewMealUsecase(gen, profiles, foods)

	foods.On("Get", mock.Anything, "u1").Return([]string{"Dal Chawal"}, nil)
	profiles.On("Get", mock.Anything, "u1").Return(&domain.Profile{
		ID:        "u1",
		DietType:  "Vegetarian",
		Allergies: []string{"peanuts"},
		UserNote:  "prefers light dinners",
	}, nil)

	rec, err := uc.RecommendFoods(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Dal Chawal"}, rec.RegularFoods)
	assert.Equal(t, []string{"Poha", "Idli"}, rec.RecomFoods)

	// The prompt must exclude regulars and reflect the stored profile.
	assert.Contains(t, gen.Prompt, "DO NOT repeat these")
	assert.Contains(t, gen.Prompt, "Dal Chawal")
	assert.Contains(t, gen.Prompt, "peanuts")
	assert.Contains(t, gen.Prompt, "prefers light dinners")
}

func TestRecommendFoodsProfileMissing(t *testing.T) {
	profiles := new(MockProfileRepo)
	foods := new(MockFoodsRepo)
	uc := usecase.NewMealUsecase(&FakeGenerator{}, profiles, foods)

	foods.On("Get", mock.Anything, "u1").Return([]string{}, nil)
	profiles.On("Get", mock.Anything, "u1").Return(nil, nil)

	_, err := uc.RecommendFoods(context.Background(), "u1")
	require.Error(t, err)
	assert.Equal(t, "Profile not found", err.Error())
}

func TestRecommendFoodsParseFailureDefaultsToEmpty(t *testing.T) {
	gen := &FakeGenerator{Response: "no json here, sorry"}
	profiles := new(MockProfileRepo)
	foods := new(MockFoodsRepo)
	uc := usecase.NewMealUsecase(gen, profiles, foods)

	foods.On("Get", mock.Anything, "u1").Return([]string{"Roti"}, nil)
	profiles.On("Get", mock.Anything, "u1").Return(&domain.Profile{ID: "u1", DietType: "Vegan"}, nil)

	rec, err := uc.RecommendFoods(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Roti"}, rec.RegularFoods)
	assert.Empty(t, rec.RecomFoods)
}
