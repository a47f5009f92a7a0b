package v1

import (
	"net/http"

	"go-diettrack-backend/config"
	"go-diettrack-backend/internal/delivery/http/middleware"
	"go-diettrack-backend/internal/delivery/http/response"
	"go-diettrack-backend/internal/domain"
	"go-diettrack-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	OnboardingUC  domain.OnboardingUsecase
	MealUC        domain.MealUsecase
	ReflectionUC  domain.ReflectionUsecase
	HealthScoreUC domain.HealthScoreUsecase
	JWKSProvider  *auth.Provider
	Config        *config.Config
}

// NewRouter wires the page routes and JSON endpoints. The diet endpoints
// keep their historical root-level paths, so there is no version prefix.
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	r.GET("/healthz", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Static pages and assets
	NewPagesHandler(r, deps.Config.WebDir)

	public := r.Group("")

	// Protected routes
	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config))
	{
		NewAuthHandler(public, protected, deps.AuthUC)
		NewOnboardingHandler(public, deps.OnboardingUC)
		NewMealHandler(public, deps.MealUC)
		NewReflectionHandler(public, deps.ReflectionUC)
		NewHealthScoreHandler(public, deps.HealthScoreUC)
	}

	return r
}
