package v1

import (
	"errors"
	"net/http"

	"go-diettrack-backend/internal/domain"
	"go-diettrack-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type OnboardingHandler struct {
	onboardingUC domain.OnboardingUsecase
}

func NewOnboardingHandler(public *gin.RouterGroup, onboardingUC domain.OnboardingUsecase) {
	handler := &OnboardingHandler{onboardingUC: onboardingUC}
	public.POST("/api/finish-onboarding", handler.Finish)
}

// Finish godoc
// @Summary      Complete onboarding
// @Description  Writes the profile, regular foods, and active goal for the user. The write sequence is not atomic; a failure partway leaves earlier writes committed.
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        onboarding  body      domain.OnboardingRequest  true  "Onboarding payload"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  failureEnvelope
// @Router       /api/finish-onboarding [post]
func (h *OnboardingHandler) Finish(c *gin.Context) {
	var req domain.OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		legacyFailure(c, http.StatusOK, err)
		return
	}

	if err := h.onboardingUC.Complete(c.Request.Context(), &req); err != nil {
		// Unknown goal is the second documented 400; everything else keeps
		// the historical 200 failure envelope.
		status := http.StatusOK
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == http.StatusNotFound {
			status = http.StatusBadRequest
		}
		legacyFailure(c, status, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Onboarding completed successfully",
	})
}
