package usecase

import (
	"context"
	"fmt"
	"time"

	"go-diettrack-backend/internal/domain"
	"go-diettrack-backend/pkg/age"
	"go-diettrack-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type onboardingUsecase struct {
	profiles domain.ProfileRepository
	foods    domain.RegularFoodsRepository
	goals    domain.GoalRepository
	validate *validator.Validate
	title    cases.Caser
}

func NewOnboardingUsecase(
	profiles domain.ProfileRepository,
	foods domain.RegularFoodsRepository,
	goals domain.GoalRepository,
	validate *validator.Validate,
) domain.OnboardingUsecase {
	return &onboardingUsecase{
		profiles: profiles,
		foods:    foods,
		goals:    goals,
		validate: validate,
		title:    cases.Title(language.English),
	}
}

// Complete runs the onboarding write sequence: profile update, regular
// foods upsert, goal lookup, prior-goal deactivation, new-goal insert.
// The steps are independent PostgREST calls, so a failure partway leaves
// the earlier writes committed; each step is idempotent and a re-run of
// onboarding converges the state (including the deactivate/insert window,
// which can briefly leave zero active goals after a crash).
func (u *onboardingUsecase) Complete(ctx context.Context, req *domain.OnboardingRequest) error {
	if err := u.validate.Struct(req); err != nil {
		return apperror.BadRequest("Validation failed: " + err.Error())
	}

	ageValue, err := age.FromDOB(req.DOB, time.Now())
	if err != nil {
		return apperror.BadRequest(err.Error())
	}

	now := time.Now().UTC().Format(time.RFC3339)

	update := &domain.ProfileUpdate{
		Name:      req.Name,
		Weight:    req.Weight,
		Height:    req.Height,
		Age:       ageValue,
		DietType:  req.DietaryPreference,
		Allergies: normalizeAllergies(req.Allergies),
		UserNote:  req.UserNote,
		UpdatedAt: now,
	}
	if err := u.profiles.Update(ctx, req.UserID, update); err != nil {
		return err
	}

	if err := u.foods.Upsert(ctx, req.UserID, req.RegularFoods); err != nil {
		return err
	}

	// Goal names are stored title-cased; "vegetarian" matches "Vegetarian".
	goal, err := u.goals.GetByName(ctx, u.title.String(req.Goal))
	if err != nil {
		return err
	}
	if goal == nil {
		return apperror.NotFound(fmt.Sprintf("Goal '%s' not found in database", req.Goal))
	}

	if err := u.goals.DeactivateAll(ctx, req.UserID); err != nil {
		return err
	}
	return u.goals.InsertActive(ctx, req.UserID, goal.ID, time.Now().UTC())
}

// normalizeAllergies maps absent, "", and the literal "None" to an empty
// list; any other value becomes a one-element list.
func normalizeAllergies(allergies *string) []string {
	if allergies == nil || *allergies == "" || *allergies == "None" {
		return []string{}
	}
	return []string{*allergies}
}
