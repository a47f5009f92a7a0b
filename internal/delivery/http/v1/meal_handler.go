package v1

import (
	"net/http"

	"go-diettrack-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type MealHandler struct {
	mealUC domain.MealUsecase
}

func NewMealHandler(public *gin.RouterGroup, mealUC domain.MealUsecase) {
	handler := &MealHandler{mealUC: mealUC}
	public.POST("/predict-meals", handler.Predict)
	public.POST("/recommend-foods", handler.Recommend)
}

type predictRequest struct {
	Name              string  `json:"name"`
	Weight            float64 `json:"weight"`
	Height            float64 `json:"height"`
	DOB               string  `json:"dob"`
	Goal              string  `json:"goal"`
	DietaryPreference string  `json:"dietaryPreference"`
}

type userIDRequest struct {
	UserID string `json:"user_id"`
}

// Predict godoc
// @Summary      Predict starter meals
// @Description  Builds a meal plan from the submitted profile snapshot. Runs during onboarding, before the profile row exists.
// @Tags         meals
// @Accept       json
// @Produce      json
// @Param        profile  body      predictRequest  true  "Profile snapshot"
// @Success      200  {object}  map[string]any
// @Router       /predict-meals [post]
func (h *MealHandler) Predict(c *gin.Context) {
	var req predictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		legacyFailure(c, http.StatusOK, err)
		return
	}

	meals, err := h.mealUC.PredictMeals(c.Request.Context(), &domain.MealProfile{
		Name:              req.Name,
		Weight:            req.Weight,
		Height:            req.Height,
		DOB:               req.DOB,
		Goal:              req.Goal,
		DietaryPreference: req.DietaryPreference,
	})
	if err != nil {
		legacyFailure(c, http.StatusOK, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "meals": meals})
}

// Recommend godoc
// @Summary      Recommend additional foods
// @Description  Suggests 5-8 foods the user does not already eat regularly, based on the stored profile and regular-food list.
// @Tags         meals
// @Accept       json
// @Produce      json
// @Param        user  body      userIDRequest  true  "User reference"
// @Success      200  {object}  map[string]any
// @Router       /recommend-foods [post]
func (h *MealHandler) Recommend(c *gin.Context) {
	var req userIDRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		c.JSON(http.StatusOK, failureEnvelope{Success: false, Message: "user_id missing"})
		return
	}

	rec, err := h.mealUC.RecommendFoods(c.Request.Context(), req.UserID)
	if err != nil {
		legacyFailure(c, http.StatusOK, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"regularfoods": rec.RegularFoods,
		"recomfoods":   rec.RecomFoods,
	})
}
