package postgres

import (
	"alcyxob/workout-tracker/internal/domain"
	"time"
)

// workoutRow is the table layout of a workout. Exercises are one JSON column:
// they are always read and written with their workout.
type workoutRow struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	Name            string `gorm:"not null"`
	Day             string `gorm:"size:9;not null;index"`
	Reps            int
	Image           string
	Exercises       []domain.Exercise `gorm:"serializer:json"`
	IsTemplate      bool              `gorm:"index"`
	DurationMinutes int
	Date            time.Time `gorm:"index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (workoutRow) TableName() string { return "workouts" }

func toWorkoutRow(w *domain.Workout) workoutRow {
	c := w.Clone()
	return workoutRow{
		ID:              c.ID,
		Name:            c.Name,
		Day:             string(c.Day),
		Reps:            c.Reps,
		Image:           c.Image,
		Exercises:       c.Exercises,
		IsTemplate:      c.IsTemplate,
		DurationMinutes: c.DurationMinutes,
		Date:            c.Date,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func (r workoutRow) toDomain() domain.Workout {
	return domain.Workout{
		ID:              r.ID,
		Name:            r.Name,
		Day:             domain.Weekday(r.Day),
		Reps:            r.Reps,
		Image:           r.Image,
		Exercises:       r.Exercises,
		IsTemplate:      r.IsTemplate,
		DurationMinutes: r.DurationMinutes,
		Date:            r.Date,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

type userRow struct {
	ID           string `gorm:"primaryKey;size:36"`
	Email        string `gorm:"uniqueIndex;not null"`
	FullName     string
	AvatarURL    string
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userRow) TableName() string { return "users" }

func (r userRow) toDomain() domain.User {
	return domain.User{
		ID:           r.ID,
		Email:        r.Email,
		FullName:     r.FullName,
		AvatarURL:    r.AvatarURL,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type weightRow struct {
	ID        string    `gorm:"primaryKey;size:36"`
	UserID    string    `gorm:"size:36;index:idx_weight_user_created"`
	Value     float64   `gorm:"not null"`
	Date      time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"index:idx_weight_user_created"`
}

func (weightRow) TableName() string { return "weight_logs" }

func (r weightRow) toDomain() domain.WeightEntry {
	return domain.WeightEntry{ID: r.ID, UserID: r.UserID, Value: r.Value, Date: r.Date, CreatedAt: r.CreatedAt}
}

type mealRow struct {
	ID        string `gorm:"primaryKey;size:36"`
	UserID    string `gorm:"size:36;index:idx_meal_user_created"`
	Name      string `gorm:"not null"`
	Calories  int    `gorm:"not null"`
	Time      string
	CreatedAt time.Time `gorm:"index:idx_meal_user_created"`
}

func (mealRow) TableName() string { return "meals" }

func (r mealRow) toDomain() domain.Meal {
	return domain.Meal{ID: r.ID, UserID: r.UserID, Name: r.Name, Calories: r.Calories, Time: r.Time, CreatedAt: r.CreatedAt}
}
