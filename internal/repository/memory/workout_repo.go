// internal/repository/memory/workout_repo.go
package memory

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"context"
	"sync"
	"time"
)

// WorkoutStore is the in-memory, process-lifetime WorkoutRepository.
// Records are kept in insertion order and handed out as deep copies.
type WorkoutStore struct {
	mu       sync.RWMutex
	workouts []domain.Workout
	lastID   int64
	now      func() time.Time
}

// NewWorkoutStore creates an empty store.
func NewWorkoutStore() *WorkoutStore {
	return &WorkoutStore{now: time.Now}
}

// nextID is derived from the clock in milliseconds but never repeats:
// when the clock has not moved past the last id, it is last+1.
// Caller holds mu.
func (s *WorkoutStore) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *WorkoutStore) indexOf(id int64) int {
	for i := range s.workouts {
		if s.workouts[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *WorkoutStore) List(ctx context.Context) ([]domain.Workout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Workout, len(s.workouts))
	for i, w := range s.workouts {
		out[i] = w.Clone()
	}
	return out, nil
}

func (s *WorkoutStore) GetByID(ctx context.Context, id int64) (*domain.Workout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	w := s.workouts[i].Clone()
	return &w, nil
}

// Create assigns the id and timestamps on workout and appends a copy of it.
func (s *WorkoutStore) Create(ctx context.Context, workout *domain.Workout) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	workout.ID = s.nextID()
	now := s.now().UTC()
	workout.CreatedAt = now
	workout.UpdatedAt = now
	if workout.Date.IsZero() {
		workout.Date = now
	}
	s.workouts = append(s.workouts, workout.Clone())
	return workout.ID, nil
}

func (s *WorkoutStore) Update(ctx context.Context, id int64, mutate repository.WorkoutMutator) (*domain.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	next := s.workouts[i].Clone()
	if err := mutate(&next); err != nil {
		return nil, err
	}
	// Identity and creation time are not the mutator's to change.
	next.ID = s.workouts[i].ID
	next.CreatedAt = s.workouts[i].CreatedAt
	next.UpdatedAt = s.now().UTC()
	s.workouts[i] = next

	out := next.Clone()
	return &out, nil
}

func (s *WorkoutStore) Delete(ctx context.Context, id int64) (*domain.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	removed := s.workouts[i]
	s.workouts = append(s.workouts[:i], s.workouts[i+1:]...)
	return &removed, nil
}

var _ repository.WorkoutRepository = (*WorkoutStore)(nil)
