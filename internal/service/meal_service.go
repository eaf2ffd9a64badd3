package service

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"context"
	"fmt"
	"strings"
)

// MealLog is a user's meals with their calorie total.
type MealLog struct {
	Meals         []domain.Meal `json:"meals"`
	TotalCalories int           `json:"totalCalories"`
}

type MealService interface {
	AddMeal(ctx context.Context, userID, name string, calories int, at string) (*domain.Meal, error)
	ListMeals(ctx context.Context, userID string) (*MealLog, error)
	DeleteMeal(ctx context.Context, userID, mealID string) error
}

type mealService struct {
	meals repository.MealRepository
}

func NewMealService(meals repository.MealRepository) MealService {
	return &mealService{meals: meals}
}

func (s *mealService) AddMeal(ctx context.Context, userID, name string, calories int, at string) (*domain.Meal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: meal name is required", ErrValidationFailed)
	}
	if calories <= 0 {
		return nil, fmt.Errorf("%w: calories must be positive", ErrValidationFailed)
	}
	at = strings.TrimSpace(at)
	if at == "" {
		return nil, fmt.Errorf("%w: meal time is required", ErrValidationFailed)
	}
	meal := &domain.Meal{UserID: userID, Name: name, Calories: calories, Time: at}
	if _, err := s.meals.Create(ctx, meal); err != nil {
		return nil, fmt.Errorf("add meal: %w", err)
	}
	return meal, nil
}

func (s *mealService) ListMeals(ctx context.Context, userID string) (*MealLog, error) {
	meals, err := s.meals.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	log := &MealLog{Meals: meals}
	for _, m := range meals {
		log.TotalCalories += m.Calories
	}
	return log, nil
}

// DeleteMeal is idempotent.
func (s *mealService) DeleteMeal(ctx context.Context, userID, mealID string) error {
	return s.meals.Delete(ctx, userID, mealID)
}
