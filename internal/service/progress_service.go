package service

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/logging"
	"alcyxob/workout-tracker/internal/repository"
	"context"
	"fmt"
	"math"
	"sort"
	"time"
)

// ProgressService records body weight and summarises its trend.
type ProgressService interface {
	LogWeight(ctx context.Context, userID string, value float64, date time.Time) (*domain.WeightEntry, error)
	RecentWeights(ctx context.Context, userID string, limit int) ([]domain.WeightEntry, error)
	WeightTrend(ctx context.Context, userID string, now time.Time) (*domain.WeightTrend, error)
}

type progressService struct {
	weights repository.WeightRepository
	logger  logging.Logger
}

func NewProgressService(weights repository.WeightRepository, logger logging.Logger) ProgressService {
	return &progressService{weights: weights, logger: logger}
}

func (s *progressService) LogWeight(ctx context.Context, userID string, value float64, date time.Time) (*domain.WeightEntry, error) {
	if !(value > 0) || math.IsInf(value, 0) {
		return nil, fmt.Errorf("%w: weight must be a positive number", ErrValidationFailed)
	}
	entry := &domain.WeightEntry{UserID: userID, Value: value, Date: date.UTC()}
	if _, err := s.weights.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("log weight: %w", err)
	}
	s.logger.Debugf("weight %.1f logged for user %s", value, userID)
	return entry, nil
}

// RecentWeights returns up to limit entries, newest first. A limit <= 0
// returns all of them.
func (s *progressService) RecentWeights(ctx context.Context, userID string, limit int) ([]domain.WeightEntry, error) {
	entries, err := s.newestFirst(ctx, userID)
	if err != nil {
		return nil, err
	}
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}

// WeightTrend reports the newest value, its change against the newest entry
// taken at least a month before now, and the overall average. Change is 0
// when nothing is that old. Values are rounded to one decimal.
func (s *progressService) WeightTrend(ctx context.Context, userID string, now time.Time) (*domain.WeightTrend, error) {
	entries, err := s.newestFirst(ctx, userID)
	if err != nil {
		return nil, err
	}
	trend := &domain.WeightTrend{}
	if len(entries) == 0 {
		return trend, nil
	}

	trend.Current = entries[0].Value
	monthAgo := now.AddDate(0, -1, 0)
	for _, e := range entries {
		if !e.Date.After(monthAgo) {
			trend.Change = roundTenth(trend.Current - e.Value)
			break
		}
	}

	sum := 0.0
	for _, e := range entries {
		sum += e.Value
	}
	trend.Average = roundTenth(sum / float64(len(entries)))
	return trend, nil
}

func (s *progressService) newestFirst(ctx context.Context, userID string) ([]domain.WeightEntry, error) {
	entries, err := s.weights.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries, nil
}
