package usecase

import (
	"context"
	"time"

	"go-diettrack-backend/internal/domain"
	"go-diettrack-backend/pkg/apperror"
)

type reflectionUsecase struct {
	times  domain.ReflectionTimeRepository
	scores domain.HealthScoreRepository
}

func NewReflectionUsecase(times domain.ReflectionTimeRepository, scores domain.HealthScoreRepository) domain.ReflectionUsecase {
	return &reflectionUsecase{times: times, scores: scores}
}

func (u *reflectionUsecase) GetTime(ctx context.Context, userID string) (string, bool, error) {
	return u.times.Get(ctx, userID)
}

func (u *reflectionUsecase) SetTime(ctx context.Context, userID string, timeStr string) error {
	if _, err := time.Parse("15:04", timeStr); err != nil {
		return apperror.BadRequest("invalid time, expected HH:MM")
	}
	return u.times.Set(ctx, userID, timeStr)
}

// Questions serves the static base catalogue until the user has any
// health-score history; after that the custom set applies, whose
// generation is still an upstream placeholder.
func (u *reflectionUsecase) Questions(ctx context.Context, userID string) (*domain.QuestionSet, error) {
	hasHistory, err := u.scores.HasAny(ctx, userID)
	if err != nil {
		return nil, err
	}

	if hasHistory {
		return &domain.QuestionSet{
			Type:      "custom",
			Questions: []domain.ReflectionQuestion{},
			Message:   "Custom questions will be generated here",
		}, nil
	}

	return &domain.QuestionSet{
		Type:      "base",
		Questions: domain.BaseQuestions,
	}, nil
}
