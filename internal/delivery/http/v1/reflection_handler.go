package v1

import (
	"net/http"

	"go-diettrack-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ReflectionHandler struct {
	reflectionUC domain.ReflectionUsecase
}

func NewReflectionHandler(public *gin.RouterGroup, reflectionUC domain.ReflectionUsecase) {
	handler := &ReflectionHandler{reflectionUC: reflectionUC}
	public.POST("/reflect-time", handler.GetTime)
	public.POST("/set-reflect-time", handler.SetTime)
	public.GET("/api/request-questions", handler.Questions)
}

type setReflectTimeRequest struct {
	UserID         string `json:"user_id"`
	ReflectionTime string `json:"reflectionTime"`
}

// GetTime godoc
// @Summary      Look up the user's preferred reflection time
// @Tags         reflection
// @Accept       json
// @Produce      json
// @Param        user  body      userIDRequest  true  "User reference"
// @Success      200  {object}  map[string]any
// @Router       /reflect-time [post]
func (h *ReflectionHandler) GetTime(c *gin.Context) {
	var req userIDRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		c.JSON(http.StatusOK, gin.H{"error": "user_id missing"})
		return
	}

	timeStr, ok, err := h.reflectionUC.GetTime(c.Request.Context(), req.UserID)
	if err != nil {
		logFailure(c, err)
		c.JSON(http.StatusOK, gin.H{"hasReflectionTime": false})
		return
	}
	if !ok {
		c.JSON(http.StatusOK, gin.H{"hasReflectionTime": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hasReflectionTime": true, "reflectionTime": timeStr})
}

// SetTime godoc
// @Summary      Save the user's preferred reflection time
// @Tags         reflection
// @Accept       json
// @Produce      json
// @Param        preference  body      setReflectTimeRequest  true  "Time preference, HH:MM"
// @Success      200  {object}  map[string]any
// @Router       /set-reflect-time [post]
func (h *ReflectionHandler) SetTime(c *gin.Context) {
	var req setReflectTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		c.JSON(http.StatusOK, gin.H{"error": "user_id missing"})
		return
	}

	if err := h.reflectionUC.SetTime(c.Request.Context(), req.UserID, req.ReflectionTime); err != nil {
		legacyFailure(c, http.StatusOK, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Questions godoc
// @Summary      Fetch the evening reflection question set
// @Description  Serves the base catalogue until the user has health-score history, then switches to the custom set.
// @Tags         reflection
// @Produce      json
// @Param        user_id  query     string  true  "User id"
// @Success      200  {object}  map[string]any
// @Router       /api/request-questions [get]
func (h *ReflectionHandler) Questions(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusOK, gin.H{
			"type":      "error",
			"count":     0,
			"questions": []domain.ReflectionQuestion{},
			"message":   "user_id missing",
		})
		return
	}

	set, err := h.reflectionUC.Questions(c.Request.Context(), userID)
	if err != nil {
		logFailure(c, err)
		c.JSON(http.StatusOK, gin.H{
			"type":      "error",
			"count":     0,
			"questions": []domain.ReflectionQuestion{},
			"message":   err.Error(),
		})
		return
	}

	body := gin.H{
		"type":      set.Type,
		"count":     len(set.Questions),
		"questions": set.Questions,
	}
	if set.Message != "" {
		body["message"] = set.Message
	}
	c.JSON(http.StatusOK, body)
}
