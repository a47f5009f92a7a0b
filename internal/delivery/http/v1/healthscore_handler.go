package v1

import (
	"net/http"

	"go-diettrack-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type HealthScoreHandler struct {
	healthScoreUC domain.HealthScoreUsecase
}

func NewHealthScoreHandler(public *gin.RouterGroup, healthScoreUC domain.HealthScoreUsecase) {
	handler := &HealthScoreHandler{healthScoreUC: healthScoreUC}
	public.POST("/check-hs", handler.Check)
}

// Check godoc
// @Summary      Check for a health score
// @Description  Looks up the user's most recent health score row, if any.
// @Tags         healthscore
// @Accept       json
// @Produce      json
// @Param        user  body      userIDRequest  true  "User reference"
// @Success      200  {object}  map[string]any
// @Router       /check-hs [post]
func (h *HealthScoreHandler) Check(c *gin.Context) {
	var req userIDRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		c.JSON(http.StatusOK, gin.H{"error": "user_id missing"})
		return
	}

	status, err := h.healthScoreUC.Check(c.Request.Context(), req.UserID)
	if err != nil {
		c.Error(err)
		return
	}

	if !status.Exists {
		c.JSON(http.StatusOK, gin.H{"hsExist": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hsExist": true, "value": status.Value})
}
