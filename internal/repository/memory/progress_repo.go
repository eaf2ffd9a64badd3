package memory

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// WeightStore keeps weight entries per user in insertion order.
type WeightStore struct {
	mu      sync.RWMutex
	entries map[string][]domain.WeightEntry
}

func NewWeightStore() *WeightStore {
	return &WeightStore{entries: make(map[string][]domain.WeightEntry)}
}

func (s *WeightStore) Create(ctx context.Context, entry *domain.WeightEntry) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry.ID = uuid.NewString()
	entry.CreatedAt = time.Now().UTC()
	if entry.Date.IsZero() {
		entry.Date = entry.CreatedAt
	}
	s.entries[entry.UserID] = append(s.entries[entry.UserID], *entry)
	return entry.ID, nil
}

func (s *WeightStore) ListByUser(ctx context.Context, userID string) ([]domain.WeightEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.WeightEntry{}, s.entries[userID]...), nil
}

// MealStore keeps meals per user in insertion order.
type MealStore struct {
	mu    sync.RWMutex
	meals map[string][]domain.Meal
}

func NewMealStore() *MealStore {
	return &MealStore{meals: make(map[string][]domain.Meal)}
}

func (s *MealStore) Create(ctx context.Context, meal *domain.Meal) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	meal.ID = uuid.NewString()
	meal.CreatedAt = time.Now().UTC()
	s.meals[meal.UserID] = append(s.meals[meal.UserID], *meal)
	return meal.ID, nil
}

func (s *MealStore) ListByUser(ctx context.Context, userID string) ([]domain.Meal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Meal{}, s.meals[userID]...), nil
}

func (s *MealStore) Delete(ctx context.Context, userID, mealID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	meals := s.meals[userID]
	for i := range meals {
		if meals[i].ID == mealID {
			s.meals[userID] = append(meals[:i], meals[i+1:]...)
			break
		}
	}
	return nil
}

var (
	_ repository.WeightRepository = (*WeightStore)(nil)
	_ repository.MealRepository   = (*MealStore)(nil)
)

// NewSet wires a fresh in-memory backend.
func NewSet() *repository.Set {
	return &repository.Set{
		Workouts: NewWorkoutStore(),
		Users:    NewUserStore(),
		Weights:  NewWeightStore(),
		Meals:    NewMealStore(),
	}
}
