package api

import (
	"alcyxob/workout-tracker/internal/logging"
	"alcyxob/workout-tracker/internal/service"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// ProgressHandler serves the signed-in user's weight log and meals.
type ProgressHandler struct {
	progressService service.ProgressService
	mealService     service.MealService
	logger          logging.Logger
}

func NewProgressHandler(progressService service.ProgressService, mealService service.MealService, logger logging.Logger) *ProgressHandler {
	return &ProgressHandler{progressService: progressService, mealService: mealService, logger: logger}
}

type LogWeightRequest struct {
	Value float64   `json:"value" binding:"required,gt=0"`
	Date  time.Time `json:"date"` // defaults to now
}

type AddMealRequest struct {
	Name     string `json:"name" binding:"required"`
	Calories int    `json:"calories" binding:"required,gt=0"`
	Time     string `json:"time" binding:"required"`
}

func (h *ProgressHandler) LogWeight(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req LogWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if req.Date.IsZero() {
		req.Date = time.Now()
	}
	entry, err := h.progressService.LogWeight(c.Request.Context(), userID, req.Value, req.Date)
	if err != nil {
		h.fail(c, err, "Failed to log weight.")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *ProgressHandler) RecentWeights(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			abortWithError(c, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}
	entries, err := h.progressService.RecentWeights(c.Request.Context(), userID, limit)
	if err != nil {
		h.fail(c, err, "Failed to retrieve weights.")
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *ProgressHandler) WeightTrend(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	trend, err := h.progressService.WeightTrend(c.Request.Context(), userID, time.Now())
	if err != nil {
		h.fail(c, err, "Failed to compute trend.")
		return
	}
	c.JSON(http.StatusOK, trend)
}

func (h *ProgressHandler) ListMeals(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	meals, err := h.mealService.ListMeals(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err, "Failed to retrieve meals.")
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (h *ProgressHandler) AddMeal(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req AddMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	meal, err := h.mealService.AddMeal(c.Request.Context(), userID, req.Name, req.Calories, req.Time)
	if err != nil {
		h.fail(c, err, "Failed to add meal.")
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func (h *ProgressHandler) DeleteMeal(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.mealService.DeleteMeal(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.fail(c, err, "Failed to delete meal.")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProgressHandler) fail(c *gin.Context, err error, generic string) {
	if errors.Is(err, service.ErrValidationFailed) {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	h.logger.Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
	abortWithError(c, http.StatusInternalServerError, generic)
}

func currentUser(c *gin.Context) (string, bool) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user.")
		return "", false
	}
	return userID, true
}
