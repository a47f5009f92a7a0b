package usecase_test

import (
	"context"
	"time"

	"go-diettrack-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) SignUp(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockIdentityProvider) SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) CreateStub(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockProfileRepo) Update(ctx context.Context, userID string, update *domain.ProfileUpdate) error {
	return m.Called(ctx, userID, update).Error(0)
}

func (m *MockProfileRepo) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

type MockFoodsRepo struct {
	mock.Mock
}

func (m *MockFoodsRepo) Upsert(ctx context.Context, userID string, foods []string) error {
	return m.Called(ctx, userID, foods).Error(0)
}

func (m *MockFoodsRepo) Get(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockGoalRepo struct {
	mock.Mock
}

func (m *MockGoalRepo) GetByName(ctx context.Context, name string) (*domain.Goal, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalRepo) DeactivateAll(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockGoalRepo) InsertActive(ctx context.Context, userID string, goalID int64, startedAt time.Time) error {
	return m.Called(ctx, userID, goalID, startedAt).Error(0)
}

type MockHealthScoreRepo struct {
	mock.Mock
}

func (m *MockHealthScoreRepo) Latest(ctx context.Context, userID string) (*domain.HealthScore, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HealthScore), args.Error(1)
}

func (m *MockHealthScoreRepo) HasAny(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

type MockReflectionTimeRepo struct {
	mock.Mock
}

func (m *MockReflectionTimeRepo) Get(ctx context.Context, userID string) (string, bool, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockReflectionTimeRepo) Set(ctx context.Context, userID string, timeStr string) error {
	return m.Called(ctx, userID, timeStr).Error(0)
}

// FakeGenerator returns a canned response without mock bookkeeping; most
// meal tests only care about the text handed back and the prompt captured.
type FakeGenerator struct {
	Response string
	Err      error
	Prompt   string
}

func (f *FakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.Prompt = prompt
	if f.Err != nil {
		return "", f.Err
	}
	return f.Response, nil
}
