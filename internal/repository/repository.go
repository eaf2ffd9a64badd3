package repository

import (
	"alcyxob/workout-tracker/internal/domain" // Import our defined domain models
	"context"
)

// Error constants for repository layer
var (
	ErrNotFound  = RepositoryError("not found")
	ErrDuplicate = RepositoryError("duplicate key")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// WorkoutMutator changes a workout in place during Update. Returning an
// error aborts the update and leaves the stored record untouched.
type WorkoutMutator func(w *domain.Workout) error

// WorkoutRepository is the WorkoutStore: the authoritative list of workouts.
// It performs no validation; callers validate before Create/Update.
type WorkoutRepository interface {
	// List returns every workout in insertion order.
	List(ctx context.Context) ([]domain.Workout, error)
	// GetByID returns ErrNotFound when no workout has the id.
	GetByID(ctx context.Context, id int64) (*domain.Workout, error)
	// Create assigns a fresh, never reused id and appends the workout.
	Create(ctx context.Context, workout *domain.Workout) (int64, error)
	// Update applies mutate to the matching workout and stores the result.
	// An absent id returns ErrNotFound and changes nothing.
	Update(ctx context.Context, id int64, mutate WorkoutMutator) (*domain.Workout, error)
	// Delete removes the workout and returns the removed record. Deleting an
	// absent id is a no-op and returns nil, nil; of two racing deletes only
	// one gets the record back.
	Delete(ctx context.Context, id int64) (*domain.Workout, error)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	// Create returns ErrDuplicate when the email is taken.
	Create(ctx context.Context, user *domain.User) (string, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// WeightRepository stores body-weight entries per user.
type WeightRepository interface {
	Create(ctx context.Context, entry *domain.WeightEntry) (string, error)
	// ListByUser returns the user's entries in insertion order.
	ListByUser(ctx context.Context, userID string) ([]domain.WeightEntry, error)
}

// MealRepository stores meals per user.
type MealRepository interface {
	Create(ctx context.Context, meal *domain.Meal) (string, error)
	// ListByUser returns the user's meals in insertion order.
	ListByUser(ctx context.Context, userID string) ([]domain.Meal, error)
	// Delete is a no-op when the meal does not exist or belongs to someone else.
	Delete(ctx context.Context, userID, mealID string) error
}

// Set bundles one backend's repositories.
type Set struct {
	Workouts WorkoutRepository
	Users    UserRepository
	Weights  WeightRepository
	Meals    MealRepository
}
