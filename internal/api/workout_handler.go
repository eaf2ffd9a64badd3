package api

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/logging"
	"alcyxob/workout-tracker/internal/service"
	"alcyxob/workout-tracker/internal/storage"
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const defaultRecentCount = 5

type WorkoutHandler struct {
	workoutService service.WorkoutService
	logger         logging.Logger
}

func NewWorkoutHandler(workoutService service.WorkoutService, logger logging.Logger) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService, logger: logger}
}

// --- DTOs ---

type ExerciseRequest struct {
	Name    string    `json:"name" binding:"required"`
	Weights []float64 `json:"weights"`
}

// WorkoutRequest is the create/edit form. Content rules (non-empty name,
// at least one exercise, positive weights) are enforced by the service so
// that every write path shares them.
type WorkoutRequest struct {
	Name            string            `json:"name"`
	Day             string            `json:"day" binding:"required,weekday"`
	Reps            int               `json:"reps" binding:"min=0"`
	DurationMinutes int               `json:"durationMinutes" binding:"min=0"`
	IsTemplate      bool              `json:"isTemplate"`
	Exercises       []ExerciseRequest `json:"exercises" binding:"dive"`
}

func (r WorkoutRequest) toDraft() domain.WorkoutDraft {
	d := domain.WorkoutDraft{
		Name:            r.Name,
		Reps:            r.Reps,
		DurationMinutes: r.DurationMinutes,
		IsTemplate:      r.IsTemplate,
	}
	d.Day, _ = domain.ParseWeekday(r.Day) // checked by the weekday binding
	for _, ex := range r.Exercises {
		d.AddExercise(ex.Name, ex.Weights...)
	}
	return d
}

type SetRequest struct {
	Weight float64 `json:"weight" binding:"required"`
}

type InstantiateRequest struct {
	Day string `json:"day" binding:"required,weekday"`
}

type UploadURLRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

type ConfirmUploadRequest struct {
	ObjectKey string `json:"objectKey" binding:"required"`
}

type WorkoutResponse struct {
	ID              int64             `json:"id"`
	Name            string            `json:"name"`
	Day             domain.Weekday    `json:"day"`
	Reps            int               `json:"reps"`
	Image           string            `json:"image"`
	Exercises       []domain.Exercise `json:"exercises"`
	IsTemplate      bool              `json:"isTemplate"`
	DurationMinutes int               `json:"durationMinutes,omitempty"`
	Date            time.Time         `json:"date"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

type DayGroupResponse struct {
	Day      domain.Weekday    `json:"day"`
	Workouts []WorkoutResponse `json:"workouts"`
}

// mapWorkout converts a workout to its DTO, resolving stored images to
// presigned URLs.
func (h *WorkoutHandler) mapWorkout(ctx context.Context, w *domain.Workout) WorkoutResponse {
	exercises := w.Exercises
	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	return WorkoutResponse{
		ID:              w.ID,
		Name:            w.Name,
		Day:             w.Day,
		Reps:            w.Reps,
		Image:           h.workoutService.ResolveImageURL(ctx, w.Image),
		Exercises:       exercises,
		IsTemplate:      w.IsTemplate,
		DurationMinutes: w.DurationMinutes,
		Date:            w.Date,
		CreatedAt:       w.CreatedAt,
		UpdatedAt:       w.UpdatedAt,
	}
}

func (h *WorkoutHandler) mapWorkouts(ctx context.Context, workouts []domain.Workout) []WorkoutResponse {
	responses := make([]WorkoutResponse, len(workouts))
	for i := range workouts {
		responses[i] = h.mapWorkout(ctx, &workouts[i])
	}
	return responses
}

// --- Handler Methods ---

func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	var filter service.WorkoutFilter
	if raw := c.Query("template"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "template must be true or false")
			return
		}
		filter.Template = &v
	}
	workouts, err := h.workoutService.ListWorkouts(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err, "Failed to retrieve workouts.")
		return
	}
	c.JSON(http.StatusOK, h.mapWorkouts(c.Request.Context(), workouts))
}

func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	workout, err := h.workoutService.CreateWorkout(c.Request.Context(), req.toDraft())
	if err != nil {
		h.fail(c, err, "Failed to create workout.")
		return
	}
	c.JSON(http.StatusCreated, h.mapWorkout(c.Request.Context(), workout))
}

func (h *WorkoutHandler) GroupByDay(c *gin.Context) {
	groups, err := h.workoutService.GroupByDay(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to group workouts.")
		return
	}
	resp := make([]DayGroupResponse, len(groups))
	for i, g := range groups {
		resp[i] = DayGroupResponse{Day: g.Day, Workouts: h.mapWorkouts(c.Request.Context(), g.Workouts)}
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WorkoutHandler) RecentWorkouts(c *gin.Context) {
	count := defaultRecentCount
	if raw := c.Query("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			abortWithError(c, http.StatusBadRequest, "count must be a non-negative integer")
			return
		}
		count = n
	}
	workouts, err := h.workoutService.RecentWorkouts(c.Request.Context(), count)
	if err != nil {
		h.fail(c, err, "Failed to retrieve workouts.")
		return
	}
	c.JSON(http.StatusOK, h.mapWorkouts(c.Request.Context(), workouts))
}

func (h *WorkoutHandler) WeeklyStats(c *gin.Context) {
	stats, err := h.workoutService.WeeklyStats(c.Request.Context(), time.Now())
	if err != nil {
		h.fail(c, err, "Failed to compute stats.")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	id, ok := workoutIDParam(c)
	if !ok {
		return
	}
	workout, err := h.workoutService.GetWorkout(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Failed to retrieve workout.")
		return
	}
	c.JSON(http.StatusOK, h.mapWorkout(c.Request.Context(), workout))
}

func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	id, ok := workoutIDParam(c)
	if !ok {
		return
	}
	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	workout, err := h.workoutService.UpdateWorkout(c.Request.Context(), id, req.toDraft())
	if err != nil {
		h.fail(c, err, "Failed to update workout.")
		return
	}
	c.JSON(http.StatusOK, h.mapWorkout(c.Request.Context(), workout))
}

func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	id, ok := workoutIDParam(c)
	if !ok {
		return
	}
	if err := h.workoutService.DeleteWorkout(c.Request.Context(), id); err != nil {
		h.fail(c, err, "Failed to delete workout.")
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Exercise and set edits ---

func (h *WorkoutHandler) AddExercise(c *gin.Context) {
	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	h.edit(c, func(d *domain.WorkoutDraft) error {
		d.AddExercise(req.Name, req.Weights...)
		return nil
	})
}

func (h *WorkoutHandler) RemoveExercise(c *gin.Context) {
	ex, ok := indexParam(c, "ex")
	if !ok {
		return
	}
	h.edit(c, func(d *domain.WorkoutDraft) error {
		return d.RemoveExercise(ex)
	})
}

func (h *WorkoutHandler) AddSet(c *gin.Context) {
	ex, ok := indexParam(c, "ex")
	if !ok {
		return
	}
	var req SetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	h.edit(c, func(d *domain.WorkoutDraft) error {
		if err := d.AddSet(ex); err != nil {
			return err
		}
		return d.SetWeight(ex, len(d.Exercises[ex].Weights)-1, req.Weight)
	})
}

func (h *WorkoutHandler) UpdateSet(c *gin.Context) {
	ex, ok := indexParam(c, "ex")
	if !ok {
		return
	}
	set, ok := indexParam(c, "set")
	if !ok {
		return
	}
	var req SetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	h.edit(c, func(d *domain.WorkoutDraft) error {
		return d.SetWeight(ex, set, req.Weight)
	})
}

func (h *WorkoutHandler) RemoveSet(c *gin.Context) {
	ex, ok := indexParam(c, "ex")
	if !ok {
		return
	}
	set, ok := indexParam(c, "set")
	if !ok {
		return
	}
	h.edit(c, func(d *domain.WorkoutDraft) error {
		return d.RemoveSet(ex, set)
	})
}

func (h *WorkoutHandler) edit(c *gin.Context, edit service.DraftEdit) {
	id, ok := workoutIDParam(c)
	if !ok {
		return
	}
	workout, err := h.workoutService.EditWorkout(c.Request.Context(), id, edit)
	if err != nil {
		h.fail(c, err, "Failed to update workout.")
		return
	}
	c.JSON(http.StatusOK, h.mapWorkout(c.Request.Context(), workout))
}

// --- Templates ---

func (h *WorkoutHandler) InstantiateTemplate(c *gin.Context) {
	id, ok := workoutIDParam(c)
	if !ok {
		return
	}
	var req InstantiateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	day, _ := domain.ParseWeekday(req.Day)
	workout, err := h.workoutService.InstantiateTemplate(c.Request.Context(), id, day)
	if err != nil {
		h.fail(c, err, "Failed to create workout from template.")
		return
	}
	c.JSON(http.StatusCreated, h.mapWorkout(c.Request.Context(), workout))
}

// --- Images ---

func (h *WorkoutHandler) RequestImageUpload(c *gin.Context) {
	id, ok := workoutIDParam(c)
	if !ok {
		return
	}
	var req UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	resp, err := h.workoutService.RequestImageUpload(c.Request.Context(), id, req.ContentType)
	if err != nil {
		h.fail(c, err, "Failed to prepare upload.")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WorkoutHandler) ConfirmImageUpload(c *gin.Context) {
	id, ok := workoutIDParam(c)
	if !ok {
		return
	}
	var req ConfirmUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	workout, err := h.workoutService.ConfirmImageUpload(c.Request.Context(), id, req.ObjectKey)
	if err != nil {
		h.fail(c, err, "Failed to attach image.")
		return
	}
	c.JSON(http.StatusOK, h.mapWorkout(c.Request.Context(), workout))
}

// fail maps service errors to status codes. Unknown errors are logged and
// reported with the generic message.
func (h *WorkoutHandler) fail(c *gin.Context, err error, generic string) {
	switch {
	case errors.Is(err, service.ErrWorkoutNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrIndexOutOfRange):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrValidationFailed),
		errors.Is(err, service.ErrNotATemplate),
		errors.Is(err, service.ErrInvalidObjectKey),
		errors.Is(err, domain.ErrInvalidWeekday):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrNotConfigured):
		abortWithError(c, http.StatusServiceUnavailable, err.Error())
	default:
		h.logger.Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		abortWithError(c, http.StatusInternalServerError, generic)
	}
}

func workoutIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID.")
		return 0, false
	}
	return id, true
}

func indexParam(c *gin.Context, name string) (int, bool) {
	i, err := strconv.Atoi(c.Param(name))
	if err != nil || i < 0 {
		abortWithError(c, http.StatusBadRequest, "Invalid "+name+" index.")
		return 0, false
	}
	return i, true
}
