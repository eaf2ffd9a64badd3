package repository

import (
	"alcyxob/workout-tracker/internal/catalog"
	"alcyxob/workout-tracker/internal/domain"
	"context"
	"fmt"
	"time"
)

// SeedWorkouts returns the sample workouts and templates loaded into an
// empty store. Zero weights mark bodyweight or cardio sets.
func SeedWorkouts() []domain.Workout {
	sets := func(n int, w float64) []float64 {
		out := make([]float64, n)
		for i := range out {
			out[i] = w
		}
		return out
	}
	image := func(first string) string {
		if img := catalog.ImageFor(first); img != "" {
			return img
		}
		return domain.DefaultWorkoutImage
	}
	return []domain.Workout{
		{
			Name: "Morning Strength",
			Day:  domain.Wednesday,
			Reps: 10,
			Exercises: []domain.Exercise{
				{Name: "Bench Press", Weights: sets(3, 60)},
				{Name: "Squats", Weights: sets(3, 80)},
				{Name: "Rows", Weights: sets(3, 50)},
			},
			DurationMinutes: 45,
			Date:            time.Date(2025, time.January, 15, 8, 30, 0, 0, time.UTC),
			Image:           image("Bench Press"),
		},
		{
			Name: "Cardio Session",
			Day:  domain.Friday,
			Reps: 1,
			Exercises: []domain.Exercise{
				{Name: "Treadmill Run", Weights: sets(1, 0)},
				{Name: "Jumping Jacks", Weights: sets(3, 0)},
			},
			DurationMinutes: 30,
			Date:            time.Date(2025, time.January, 17, 17, 0, 0, 0, time.UTC),
			Image:           image("Treadmill Run"),
		},
		{
			Name:       "Upper Body",
			Day:        domain.Monday,
			Reps:       10,
			IsTemplate: true,
			Exercises: []domain.Exercise{
				{Name: "Bench Press", Weights: sets(3, 60)},
				{Name: "Shoulder Press", Weights: sets(3, 40)},
				{Name: "Pull-ups", Weights: sets(3, 0)},
			},
			Image: image("Bench Press"),
		},
		{
			Name:       "Lower Body",
			Day:        domain.Thursday,
			Reps:       12,
			IsTemplate: true,
			Exercises: []domain.Exercise{
				{Name: "Squats", Weights: sets(3, 80)},
				{Name: "Deadlifts", Weights: sets(3, 100)},
				{Name: "Leg Press", Weights: sets(3, 120)},
			},
			Image: image("Squats"),
		},
	}
}

// Seed loads SeedWorkouts into the store when it holds no workouts yet.
// It returns how many records were written.
func Seed(ctx context.Context, workouts WorkoutRepository) (int, error) {
	existing, err := workouts.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed: list workouts: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}
	n := 0
	for _, w := range SeedWorkouts() {
		w := w
		if _, err := workouts.Create(ctx, &w); err != nil {
			return n, fmt.Errorf("seed: create %q: %w", w.Name, err)
		}
		n++
	}
	return n, nil
}
