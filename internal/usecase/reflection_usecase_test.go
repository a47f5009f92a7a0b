package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-diettrack-backend/internal/domain"
	"go-diettrack-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestQuestionsBaseSetForNewUser(t *testing.T) {
	scores := new(MockHealthScoreRepo)
	uc := usecase.NewReflectionUsecase(new(MockReflectionTimeRepo), scores)

	scores.On("HasAny", mock.Anything, "u1").Return(false, nil)

	set, err := uc.Questions(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "base", set.Type)
	assert.Len(t, set.Questions, 6)
	assert.Equal(t, "q_heaviness", set.Questions[0].ID)
}

func TestQuestionsCustomPlaceholderWithHistory(t *testing.T) {
	scores := new(MockHealthScoreRepo)
	uc := usecase.NewReflectionUsecase(new(MockReflectionTimeRepo), scores)

	scores.On("HasAny", mock.Anything, "u1").Return(true, nil)

	set, err := uc.Questions(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "custom", set.Type)
	assert.Empty(t, set.Questions)
	assert.Equal(t, "Custom questions will be generated here", set.Message)
}

func TestQuestionsUpstreamError(t *testing.T) {
	scores := new(MockHealthScoreRepo)
	uc := usecase.NewReflectionUsecase(new(MockReflectionTimeRepo), scores)

	scores.On("HasAny", mock.Anything, "u1").Return(false, errors.New("timeout"))

	_, err := uc.Questions(context.Background(), "u1")
	assert.Error(t, err)
}

func TestSetTimeValidatesFormat(t *testing.T) {
	times := new(MockReflectionTimeRepo)
	uc := usecase.NewReflectionUsecase(times, new(MockHealthScoreRepo))

	err := uc.SetTime(context.Background(), "u1", "quarter past nine")
	require.Error(t, err)
	times.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)

	times.On("Set", mock.Anything, "u1", "21:30").Return(nil)
	require.NoError(t, uc.SetTime(context.Background(), "u1", "21:30"))
}

func TestHealthScoreCheck(t *testing.T) {
	t.Run("no rows", func(t *testing.T) {
		scores := new(MockHealthScoreRepo)
		uc := usecase.NewHealthScoreUsecase(scores)

		scores.On("Latest", mock.Anything, "u1").Return(nil, nil)

		status, err := uc.Check(context.Background(), "u1")
		require.NoError(t, err)
		assert.False(t, status.Exists)
	})

	t.Run("latest by date", func(t *testing.T) {
		scores := new(MockHealthScoreRepo)
		uc := usecase.NewHealthScoreUsecase(scores)

		scores.On("Latest", mock.Anything, "u1").
			Return(&domain.HealthScore{UserID: "u1", Date: "2026-08-30", Score: 81}, nil)

		status, err := uc.Check(context.Background(), "u1")
		require.NoError(t, err)
		assert.True(t, status.Exists)
		assert.Equal(t, 81.0, status.Value)
	})
}
