package usecase

import (
	"context"

	"go-diettrack-backend/internal/domain"
)

type healthScoreUsecase struct {
	scores domain.HealthScoreRepository
}

func NewHealthScoreUsecase(scores domain.HealthScoreRepository) domain.HealthScoreUsecase {
	return &healthScoreUsecase{scores: scores}
}

func (u *healthScoreUsecase) Check(ctx context.Context, userID string) (*domain.HealthScoreStatus, error) {
	latest, err := u.scores.Latest(ctx, userID)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return &domain.HealthScoreStatus{Exists: false}, nil
	}
	return &domain.HealthScoreStatus{Exists: true, Value: latest.Score}, nil
}
