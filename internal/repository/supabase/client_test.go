package supabase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-diettrack-backend/config"
	"go-diettrack-backend/internal/domain"
	"go-diettrack-backend/internal/repository/supabase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *supabase.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return supabase.NewClient(&config.Config{
		SupabaseUrl:            srv.URL,
		SupabaseServiceKey:     "service-key",
		SupabaseAnonKey:        "anon-key",
		UpstreamTimeoutSeconds: 2,
	})
}

func TestHealthScoreLatestQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/health_scores", r.URL.Path)
		assert.Equal(t, "eq.u1", r.URL.Query().Get("user_id"))
		assert.Equal(t, "date.desc", r.URL.Query().Get("order"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "service-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":3,"user_id":"u1","date":"2026-08-30","score":72.5}]`))
	})

	repo := supabase.NewHealthScoreRepository(client)
	hs, err := repo.Latest(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, hs)
	assert.Equal(t, 72.5, hs.Score)
	assert.Equal(t, "2026-08-30", hs.Date)
}

func TestHealthScoreLatestEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	repo := supabase.NewHealthScoreRepository(client)
	hs, err := repo.Latest(context.Background(), "u1")
	require.NoError(t, err)
	assert.Nil(t, hs)
}

func TestRegularFoodsUpsert(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/foods_regular", r.URL.Path)
		assert.Equal(t, "user_id", r.URL.Query().Get("on_conflict"))
		assert.Contains(t, r.Header.Get("Prefer"), "resolution=merge-duplicates")

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "u1", body["user_id"])
		assert.Equal(t, []any{"dal", "rice"}, body["foods"])

		w.WriteHeader(http.StatusCreated)
	})

	repo := supabase.NewRegularFoodsRepository(client)
	require.NoError(t, repo.Upsert(context.Background(), "u1", []string{"dal", "rice"}))
}

func TestGoalGetByNameMiss(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "eq.Vegetarian", r.URL.Query().Get("name"))
		_, _ = w.Write([]byte(`[]`))
	})

	repo := supabase.NewGoalRepository(client)
	goal, err := repo.GetByName(context.Background(), "Vegetarian")
	require.NoError(t, err)
	assert.Nil(t, goal)
}

func TestUpstreamErrorMessageSurfaces(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"duplicate key value violates unique constraint"}`))
	})

	repo := supabase.NewProfileRepository(client)
	err := repo.CreateStub(context.Background(), "u1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate key value")
}

func TestSignInRejectionIsNotAnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))

		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error_description":"Invalid login credentials"}`))
	})

	var provider domain.IdentityProvider = supabase.NewIdentityRepository(client)
	session, err := provider.SignInWithPassword(context.Background(), "a@b.c", "wrong")
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSignUpDecodesTopLevelUser(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/signup", r.URL.Path)
		assert.Equal(t, "service-key", r.Header.Get("apikey"))

		_, _ = w.Write([]byte(`{"id":"uuid-1","email":"a@b.c"}`))
	})

	provider := supabase.NewIdentityRepository(client)
	user, err := provider.SignUp(context.Background(), "a@b.c", "secret123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "uuid-1", user.ID)
}
