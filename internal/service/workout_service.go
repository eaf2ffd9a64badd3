package service

import (
	"alcyxob/workout-tracker/internal/catalog"
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/logging"
	"alcyxob/workout-tracker/internal/repository"
	"alcyxob/workout-tracker/internal/storage"
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrNotATemplate     = errors.New("workout is not a template")
	ErrValidationFailed = errors.New("validation failed")
	ErrUploadURLError   = errors.New("failed to generate upload URL")
	ErrInvalidObjectKey = errors.New("object key does not belong to this workout")
)

// WorkoutNotifier receives every committed change to the workout store.
type WorkoutNotifier interface {
	Publish(event domain.WorkoutEvent)
}

type nopNotifier struct{}

func (nopNotifier) Publish(domain.WorkoutEvent) {}

// WorkoutFilter narrows ListWorkouts. A nil Template means both kinds.
type WorkoutFilter struct {
	Template *bool
}

// DayGroup is one weekday bucket of the by-day listing.
type DayGroup struct {
	Day      domain.Weekday   `json:"day"`
	Workouts []domain.Workout `json:"workouts"`
}

// WeeklyStats summarises non-template workouts dated in the last seven days.
type WeeklyStats struct {
	Workouts      int     `json:"workouts"`
	DurationHours float64 `json:"durationHours"`
}

// UploadURLResponse structure for returning URL and object key
type UploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"` // The key client needs to report back on confirm
}

// DraftEdit changes a draft built from the stored workout. Returning an
// error abandons the edit.
type DraftEdit func(d *domain.WorkoutDraft) error

type WorkoutService interface {
	CreateWorkout(ctx context.Context, draft domain.WorkoutDraft) (*domain.Workout, error)
	GetWorkout(ctx context.Context, id int64) (*domain.Workout, error)
	ListWorkouts(ctx context.Context, filter WorkoutFilter) ([]domain.Workout, error)
	UpdateWorkout(ctx context.Context, id int64, draft domain.WorkoutDraft) (*domain.Workout, error)
	EditWorkout(ctx context.Context, id int64, edit DraftEdit) (*domain.Workout, error)
	DeleteWorkout(ctx context.Context, id int64) error

	GroupByDay(ctx context.Context) ([]DayGroup, error)
	ListTemplates(ctx context.Context) ([]domain.Workout, error)
	InstantiateTemplate(ctx context.Context, templateID int64, day domain.Weekday) (*domain.Workout, error)
	RecentWorkouts(ctx context.Context, count int) ([]domain.Workout, error)
	WeeklyStats(ctx context.Context, now time.Time) (*WeeklyStats, error)

	RequestImageUpload(ctx context.Context, id int64, contentType string) (*UploadURLResponse, error)
	ConfirmImageUpload(ctx context.Context, id int64, objectKey string) (*domain.Workout, error)
	ResolveImageURL(ctx context.Context, image string) string
}

// workoutService implements WorkoutService on top of the WorkoutStore.
type workoutService struct {
	workouts    repository.WorkoutRepository
	notifier    WorkoutNotifier
	fileStorage storage.FileStorage // nil when uploads are disabled
	logger      logging.Logger
	now         func() time.Time
}

// NewWorkoutService wires the service. notifier and fileStorage may be nil.
func NewWorkoutService(workouts repository.WorkoutRepository, notifier WorkoutNotifier, fileStorage storage.FileStorage, logger logging.Logger) WorkoutService {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &workoutService{
		workouts:    workouts,
		notifier:    notifier,
		fileStorage: fileStorage,
		logger:      logger,
		now:         time.Now,
	}
}

// ValidateDraft is the save guard of the create and edit flows. The store
// itself accepts anything, so every write path calls this first.
func ValidateDraft(d domain.WorkoutDraft) error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: workout name is required", ErrValidationFailed)
	}
	if !d.Day.Valid() {
		return fmt.Errorf("%w: day must be one of sunday..saturday", ErrValidationFailed)
	}
	if len(d.Exercises) == 0 {
		return fmt.Errorf("%w: add at least one exercise", ErrValidationFailed)
	}
	for i, ex := range d.Exercises {
		if strings.TrimSpace(ex.Name) == "" {
			return fmt.Errorf("%w: exercise %d has no name", ErrValidationFailed, i+1)
		}
		if len(ex.Weights) == 0 {
			return fmt.Errorf("%w: %s has no sets", ErrValidationFailed, ex.Name)
		}
		for s, w := range ex.Weights {
			if !(w > 0) || math.IsInf(w, 0) {
				return fmt.Errorf("%w: enter a weight for %s set %d", ErrValidationFailed, ex.Name, s+1)
			}
		}
	}
	if d.Reps < 0 || d.DurationMinutes < 0 {
		return fmt.Errorf("%w: reps and duration cannot be negative", ErrValidationFailed)
	}
	return nil
}

// derivedReps uses the draft's reps, else the set count of the first exercise.
func derivedReps(d domain.WorkoutDraft) int {
	if d.Reps > 0 {
		return d.Reps
	}
	if len(d.Exercises) > 0 {
		return d.Exercises[0].SetCount()
	}
	return 0
}

// derivedImage is the catalog image of the first exercise, else the default.
func derivedImage(d domain.WorkoutDraft) string {
	if len(d.Exercises) > 0 {
		if img := catalog.ImageFor(d.Exercises[0].Name); img != "" {
			return img
		}
	}
	return domain.DefaultWorkoutImage
}

func cleanExercises(in []domain.Exercise) []domain.Exercise {
	out := make([]domain.Exercise, len(in))
	for i, ex := range in {
		out[i] = ex.Clone()
		out[i].Name = strings.TrimSpace(ex.Name)
	}
	return out
}

func (s *workoutService) CreateWorkout(ctx context.Context, draft domain.WorkoutDraft) (*domain.Workout, error) {
	if err := ValidateDraft(draft); err != nil {
		return nil, err
	}
	workout := &domain.Workout{
		Name:            strings.TrimSpace(draft.Name),
		Day:             draft.Day,
		Reps:            derivedReps(draft),
		Image:           derivedImage(draft),
		Exercises:       cleanExercises(draft.Exercises),
		IsTemplate:      draft.IsTemplate,
		DurationMinutes: draft.DurationMinutes,
	}
	if _, err := s.workouts.Create(ctx, workout); err != nil {
		return nil, fmt.Errorf("create workout: %w", err)
	}
	s.logger.Infof("workout %d created (%s, %s)", workout.ID, workout.Name, workout.Day)
	s.publish(ctx, domain.WorkoutCreated, workout)
	return workout, nil
}

func (s *workoutService) GetWorkout(ctx context.Context, id int64) (*domain.Workout, error) {
	w, err := s.workouts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return w, nil
}

func (s *workoutService) ListWorkouts(ctx context.Context, filter WorkoutFilter) ([]domain.Workout, error) {
	all, err := s.workouts.List(ctx)
	if err != nil {
		return nil, err
	}
	if filter.Template == nil {
		return all, nil
	}
	out := make([]domain.Workout, 0, len(all))
	for _, w := range all {
		if w.IsTemplate == *filter.Template {
			out = append(out, w)
		}
	}
	return out, nil
}

// UpdateWorkout replaces name, day, and exercises with the draft's.
func (s *workoutService) UpdateWorkout(ctx context.Context, id int64, draft domain.WorkoutDraft) (*domain.Workout, error) {
	if err := ValidateDraft(draft); err != nil {
		return nil, err
	}
	return s.commit(ctx, id, func(w *domain.Workout) error {
		applyDraft(w, draft)
		return nil
	})
}

// EditWorkout applies edit to a draft of the stored workout, validates the
// result, and commits it. The whole sequence runs inside the store's update,
// so the edit always starts from the latest state.
func (s *workoutService) EditWorkout(ctx context.Context, id int64, edit DraftEdit) (*domain.Workout, error) {
	return s.commit(ctx, id, func(w *domain.Workout) error {
		draft := domain.DraftFromWorkout(*w)
		if err := edit(&draft); err != nil {
			return err
		}
		if err := ValidateDraft(draft); err != nil {
			return err
		}
		applyDraft(w, draft)
		return nil
	})
}

func applyDraft(w *domain.Workout, d domain.WorkoutDraft) {
	w.Name = strings.TrimSpace(d.Name)
	w.Day = d.Day
	w.Exercises = cleanExercises(d.Exercises)
	w.IsTemplate = d.IsTemplate
	w.DurationMinutes = d.DurationMinutes
	if d.Reps > 0 {
		w.Reps = d.Reps
	}
}

func (s *workoutService) commit(ctx context.Context, id int64, mutate repository.WorkoutMutator) (*domain.Workout, error) {
	w, err := s.workouts.Update(ctx, id, mutate)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	s.logger.Infof("workout %d updated", id)
	s.publish(ctx, domain.WorkoutUpdated, w)
	return w, nil
}

// DeleteWorkout is idempotent: deleting a missing workout succeeds.
// Only the call that actually removed the record publishes and cleans up
// its image.
func (s *workoutService) DeleteWorkout(ctx context.Context, id int64) error {
	removed, err := s.workouts.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	if removed == nil {
		return nil
	}
	s.logger.Infof("workout %d deleted", id)
	s.notifier.Publish(domain.WorkoutEvent{Type: domain.WorkoutDeleted, WorkoutID: id, At: s.now().UTC()})
	s.deleteStoredImage(ctx, removed.Image)
	return nil
}

// GroupByDay buckets non-template workouts under the seven canonical days,
// Sunday first. Every day is present; insertion order is kept within a day.
func (s *workoutService) GroupByDay(ctx context.Context) ([]DayGroup, error) {
	notTemplate := false
	workouts, err := s.ListWorkouts(ctx, WorkoutFilter{Template: &notTemplate})
	if err != nil {
		return nil, err
	}
	groups := make([]DayGroup, len(domain.Weekdays))
	for i, d := range domain.Weekdays {
		groups[i] = DayGroup{Day: d, Workouts: []domain.Workout{}}
	}
	for _, w := range workouts {
		i := w.Day.Index()
		if i < 0 {
			s.logger.Warnf("workout %d has non-canonical day %q; left out of grouping", w.ID, w.Day)
			continue
		}
		groups[i].Workouts = append(groups[i].Workouts, w)
	}
	return groups, nil
}

func (s *workoutService) ListTemplates(ctx context.Context) ([]domain.Workout, error) {
	isTemplate := true
	return s.ListWorkouts(ctx, WorkoutFilter{Template: &isTemplate})
}

// InstantiateTemplate copies a template into a new workout on day.
func (s *workoutService) InstantiateTemplate(ctx context.Context, templateID int64, day domain.Weekday) (*domain.Workout, error) {
	tpl, err := s.GetWorkout(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if !tpl.IsTemplate {
		return nil, ErrNotATemplate
	}
	draft := domain.DraftFromWorkout(*tpl)
	draft.IsTemplate = false
	draft.Day = day
	return s.CreateWorkout(ctx, draft)
}

// RecentWorkouts returns up to count non-template workouts, newest first.
func (s *workoutService) RecentWorkouts(ctx context.Context, count int) ([]domain.Workout, error) {
	notTemplate := false
	workouts, err := s.ListWorkouts(ctx, WorkoutFilter{Template: &notTemplate})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(workouts, func(i, j int) bool {
		return workouts[i].Date.After(workouts[j].Date)
	})
	if count >= 0 && count < len(workouts) {
		workouts = workouts[:count]
	}
	return workouts, nil
}

func (s *workoutService) WeeklyStats(ctx context.Context, now time.Time) (*WeeklyStats, error) {
	notTemplate := false
	workouts, err := s.ListWorkouts(ctx, WorkoutFilter{Template: &notTemplate})
	if err != nil {
		return nil, err
	}
	weekStart := now.AddDate(0, 0, -7)
	stats := &WeeklyStats{}
	minutes := 0
	for _, w := range workouts {
		if !w.Date.Before(weekStart) && !w.Date.After(now) {
			stats.Workouts++
			minutes += w.DurationMinutes
		}
	}
	stats.DurationHours = roundTenth(float64(minutes) / 60)
	return stats, nil
}

// --- Images ---

func (s *workoutService) RequestImageUpload(ctx context.Context, id int64, contentType string) (*UploadURLResponse, error) {
	if s.fileStorage == nil {
		return nil, storage.ErrNotConfigured
	}
	ext, ok := imageExtensions[strings.ToLower(strings.TrimSpace(contentType))]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported image content type %q", ErrValidationFailed, contentType)
	}
	if _, err := s.GetWorkout(ctx, id); err != nil {
		return nil, err
	}

	objectKey := imageKeyPrefix(id) + "/" + uuid.NewString() + "." + ext
	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, ErrUploadURLError
	}
	return &UploadURLResponse{UploadURL: uploadURL, ObjectKey: objectKey}, nil
}

// ConfirmImageUpload points the workout at an uploaded object. The previous
// uploaded image, if any, is removed from the bucket.
func (s *workoutService) ConfirmImageUpload(ctx context.Context, id int64, objectKey string) (*domain.Workout, error) {
	if s.fileStorage == nil {
		return nil, storage.ErrNotConfigured
	}
	if !validImageKey(id, objectKey) {
		return nil, ErrInvalidObjectKey
	}
	var previous string
	w, err := s.commit(ctx, id, func(w *domain.Workout) error {
		previous = w.Image
		w.Image = storage.ObjectRef(objectKey)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if previous != w.Image {
		s.deleteStoredImage(ctx, previous)
	}
	return w, nil
}

// ResolveImageURL turns a stored object reference into a presigned URL.
// Plain URLs pass through; on failure the default image is returned.
func (s *workoutService) ResolveImageURL(ctx context.Context, image string) string {
	key, ok := storage.ParseObjectRef(image)
	if !ok {
		return image
	}
	if s.fileStorage == nil {
		return domain.DefaultWorkoutImage
	}
	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, key, storage.DefaultPresignedURLExpiry)
	if err != nil {
		s.logger.Warnf("workout image %q: %v", key, err)
		return domain.DefaultWorkoutImage
	}
	return url
}

func (s *workoutService) deleteStoredImage(ctx context.Context, image string) {
	key, ok := storage.ParseObjectRef(image)
	if !ok || s.fileStorage == nil {
		return
	}
	if err := s.fileStorage.DeleteObject(ctx, key); err != nil {
		s.logger.Warnf("workout image %q not removed: %v", key, err)
	}
}

// imageExtensions is the set of content types accepted for workout images.
var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

func imageKeyPrefix(id int64) string {
	return "workouts/" + strconv.FormatInt(id, 10)
}

// validImageKey accepts only keys RequestImageUpload could have issued for
// the workout: workouts/<id>/<uuid>.<known ext>.
func validImageKey(id int64, key string) bool {
	name, ok := strings.CutPrefix(key, imageKeyPrefix(id)+"/")
	if !ok {
		return false
	}
	base, ext, ok := strings.Cut(name, ".")
	if !ok {
		return false
	}
	if _, err := uuid.Parse(base); err != nil {
		return false
	}
	for _, known := range imageExtensions {
		if ext == known {
			return true
		}
	}
	return false
}

// publish sends a copy of w with its image resolved to a fetchable URL.
func (s *workoutService) publish(ctx context.Context, t domain.WorkoutEventType, w *domain.Workout) {
	c := w.Clone()
	c.Image = s.ResolveImageURL(ctx, c.Image)
	s.notifier.Publish(domain.WorkoutEvent{Type: t, WorkoutID: w.ID, Workout: &c, At: s.now().UTC()})
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
