package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go-diettrack-backend/internal/domain"
	"go-diettrack-backend/pkg/apperror"
	"go-diettrack-backend/pkg/jsonextract"
)

type mealUsecase struct {
	generator domain.Generator
	profiles  domain.ProfileRepository
	foods     domain.RegularFoodsRepository
}

func NewMealUsecase(
	generator domain.Generator,
	profiles domain.ProfileRepository,
	foods domain.RegularFoodsRepository,
) domain.MealUsecase {
	return &mealUsecase{
		generator: generator,
		profiles:  profiles,
		foods:     foods,
	}
}

// genericMealFailure hides the underlying cause from clients; the wrapped
// error still reaches the handler's log line.
const genericMealFailure = "Failed to generate meals"

func (u *mealUsecase) PredictMeals(ctx context.Context, profile *domain.MealProfile) ([]domain.Meal, error) {
	raw, err := u.generator.Generate(ctx, buildMealPrompt(profile))
	if err != nil {
		return nil, apperror.Unavailable(genericMealFailure, err)
	}

	text, err := jsonextract.Array(raw)
	if err != nil {
		return nil, apperror.ParseError(genericMealFailure, err)
	}

	// Entries pass through verbatim; individual meals are not validated
	// against the {name, calories, description} shape.
	var meals []domain.Meal
	if err := json.Unmarshal([]byte(text), &meals); err != nil {
		return nil, apperror.ParseError(genericMealFailure, err)
	}
	return meals, nil
}

func (u *mealUsecase) RecommendFoods(ctx context.Context, userID string) (*domain.FoodRecommendation, error) {
	regular, err := u.foods.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile, err := u.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found")
	}

	raw, err := u.generator.Generate(ctx, buildRecommendPrompt(profile, regular))
	if err != nil {
		return nil, err
	}

	// Unparseable model output degrades to an empty recommendation list:
	// the regular foods half of the payload is still worth returning.
	recom := []string{}
	if text, err := jsonextract.Object(raw); err == nil {
		var parsed struct {
			RecomFoods []string `json:"recomfoods"`
		}
		if json.Unmarshal([]byte(text), &parsed) == nil && parsed.RecomFoods != nil {
			recom = parsed.RecomFoods
		}
	}

	return &domain.FoodRecommendation{
		RegularFoods: regular,
		RecomFoods:   recom,
	}, nil
}

func buildMealPrompt(p *domain.MealProfile) string {
	var sb strings.Builder
	sb.WriteString("You are a nutrition assistant. Based on the following user profile:\n\n")
	fmt.Fprintf(&sb, "Weight: %g kg\n", p.Weight)
	fmt.Fprintf(&sb, "Height: %g cm\n", p.Height)
	fmt.Fprintf(&sb, "Date of Birth: %s\n\n", p.DOB)
	fmt.Fprintf(&sb, "Dietary Preference: %s\n\n", p.DietaryPreference)
	sb.WriteString("Generate a list of EXACTLY 10 foods that this person is likely to eat regularly.\n")
	sb.WriteString("Foods should be culturally relevant to India unless the dietary preference suggests otherwise.\n")
	sb.WriteString("Try to only include foods which the user would eat on a daily basis.\n")
	sb.WriteString("For each food, include:\n- name\n- a short description containing main ingredients\n- estimated calories per serving\n\n")
	sb.WriteString("Return ONLY a JSON array.\nNO explanation.\nNO markdown.\nNO code fences.\nNO text before or after the JSON.\n\n")
	sb.WriteString("Example format:\n[\n")
	sb.WriteString(`  {"name": "Dal Chawal", "calories": 420, "description": "A traditional Indian meal consisting of lentil curry (dal) served with steamed rice (chawal)."},` + "\n")
	sb.WriteString(`  {"name": "Roti Aloo Sabzi", "calories": 350, "description": "Whole wheat flatbread with spiced potato curry."}` + "\n]\n")
	return sb.String()
}

func buildRecommendPrompt(p *domain.Profile, regular []string) string {
	regularJSON, _ := json.Marshal(regular)

	var sb strings.Builder
	sb.WriteString("You are a food recommendation engine for Indian diets.\n\n")
	fmt.Fprintf(&sb, "Diet type: %s\n", p.DietType)
	fmt.Fprintf(&sb, "Allergies: %s\n", strings.Join(p.Allergies, ", "))
	fmt.Fprintf(&sb, "Notes: %s\n\n", p.UserNote)
	sb.WriteString("Regular foods the user already eats (DO NOT repeat these):\n")
	sb.Write(regularJSON)
	sb.WriteString("\n\nRecommend 5-8 additional foods the user might have eaten today.\n")
	sb.WriteString("Include home-cooked, outside food, and light snacks.\n")
	sb.WriteString("Return ONLY valid JSON in this exact format:\n\n")
	sb.WriteString("{\n  \"recomfoods\": [\"food1\", \"food2\", \"food3\"]\n}\n")
	return sb.String()
}
