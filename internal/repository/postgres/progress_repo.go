package postgres

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type weightRepository struct {
	db *gorm.DB
}

func NewWeightRepository(db *gorm.DB) repository.WeightRepository {
	return &weightRepository{db: db}
}

func (r *weightRepository) Create(ctx context.Context, entry *domain.WeightEntry) (string, error) {
	entry.ID = uuid.NewString()
	entry.CreatedAt = time.Now().UTC()
	if entry.Date.IsZero() {
		entry.Date = entry.CreatedAt
	}
	row := weightRow{ID: entry.ID, UserID: entry.UserID, Value: entry.Value, Date: entry.Date, CreatedAt: entry.CreatedAt}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", err
	}
	return entry.ID, nil
}

func (r *weightRepository) ListByUser(ctx context.Context, userID string) ([]domain.WeightEntry, error) {
	var rows []weightRow
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.WeightEntry, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

type mealRepository struct {
	db *gorm.DB
}

func NewMealRepository(db *gorm.DB) repository.MealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) Create(ctx context.Context, meal *domain.Meal) (string, error) {
	meal.ID = uuid.NewString()
	meal.CreatedAt = time.Now().UTC()
	row := mealRow{ID: meal.ID, UserID: meal.UserID, Name: meal.Name, Calories: meal.Calories, Time: meal.Time, CreatedAt: meal.CreatedAt}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", err
	}
	return meal.ID, nil
}

func (r *mealRepository) ListByUser(ctx context.Context, userID string) ([]domain.Meal, error) {
	var rows []mealRow
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Meal, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

func (r *mealRepository) Delete(ctx context.Context, userID, mealID string) error {
	return r.db.WithContext(ctx).Where("id = ? AND user_id = ?", mealID, userID).Delete(&mealRow{}).Error
}

// NewSet wires the Postgres backend against db.
func NewSet(db *gorm.DB) *repository.Set {
	return &repository.Set{
		Workouts: NewWorkoutRepository(db),
		Users:    NewUserRepository(db),
		Weights:  NewWeightRepository(db),
		Meals:    NewMealRepository(db),
	}
}
