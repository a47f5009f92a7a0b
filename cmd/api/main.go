package main

import (
	"context"
	"go-diettrack-backend/config"
	v1 "go-diettrack-backend/internal/delivery/http/v1"
	"go-diettrack-backend/internal/genai"
	"go-diettrack-backend/internal/repository/file"
	"go-diettrack-backend/internal/repository/supabase"
	"go-diettrack-backend/internal/usecase"
	"go-diettrack-backend/pkg/auth"
	"go-diettrack-backend/pkg/logger"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
)

// @title           DietTrack Backend API
// @version         1.0
// @description     Diet tracking backend: onboarding, meal prediction, and reflection scheduling.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting diettrack backend", "port", cfg.Port)

	// 3. Setup Supabase Client
	sb := supabase.NewClient(cfg)

	// 4. Setup Repositories
	identityRepo := supabase.NewIdentityRepository(sb)
	profileRepo := supabase.NewProfileRepository(sb)
	foodsRepo := supabase.NewRegularFoodsRepository(sb)
	goalRepo := supabase.NewGoalRepository(sb)
	healthScoreRepo := supabase.NewHealthScoreRepository(sb)
	reflectionTimeRepo := file.NewReflectionTimeRepository(cfg.ReflectionTimeFile)

	// 5. Setup Generative Client
	generator := genai.NewClient(cfg)

	// 6. Setup UseCases
	validate := validator.New()
	authUC := usecase.NewAuthUsecase(identityRepo, profileRepo)
	onboardingUC := usecase.NewOnboardingUsecase(profileRepo, foodsRepo, goalRepo, validate)
	mealUC := usecase.NewMealUsecase(generator, profileRepo, foodsRepo)
	reflectionUC := usecase.NewReflectionUsecase(reflectionTimeRepo, healthScoreRepo)
	healthScoreUC := usecase.NewHealthScoreUsecase(healthScoreRepo)

	// 7. Setup Auth Provider (JWKS)
	// Assuming Supabase URL is like https://xyz.supabase.co
	jwksURL := cfg.SupabaseUrl + "/auth/v1/.well-known/jwks.json"
	jwksProvider := auth.NewProvider(jwksURL)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		OnboardingUC:  onboardingUC,
		MealUC:        mealUC,
		ReflectionUC:  reflectionUC,
		HealthScoreUC: healthScoreUC,
		JWKSProvider:  jwksProvider,
		Config:        cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
