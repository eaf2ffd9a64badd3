package service

import (
	"alcyxob/workout-tracker/internal/logging"
	"alcyxob/workout-tracker/internal/repository/memory"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightTrend(t *testing.T) {
	svc := NewProgressService(memory.NewWeightStore(), logging.NewNop())
	ctx := context.Background()
	now := time.Date(2025, 2, 20, 9, 0, 0, 0, time.UTC)

	empty, err := svc.WeightTrend(ctx, "u1", now)
	require.NoError(t, err)
	assert.Zero(t, *empty)

	for _, e := range []struct {
		v float64
		d time.Time
	}{
		{75.5, time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)},
		{75.2, time.Date(2025, 1, 5, 8, 0, 0, 0, time.UTC)},
		{74.8, time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)},
		{74.5, time.Date(2025, 2, 15, 8, 0, 0, 0, time.UTC)},
	} {
		_, err := svc.LogWeight(ctx, "u1", e.v, e.d)
		require.NoError(t, err)
	}

	trend, err := svc.WeightTrend(ctx, "u1", now)
	require.NoError(t, err)
	assert.Equal(t, 74.5, trend.Current)
	assert.Equal(t, -0.3, trend.Change) // vs. Jan 10
	assert.Equal(t, 75.0, trend.Average)

	recent, err := svc.RecentWeights(ctx, "u1", 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, 74.5, recent[0].Value)
	assert.Equal(t, 74.8, recent[1].Value)

	all, err := svc.RecentWeights(ctx, "u1", 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	other, err := svc.WeightTrend(ctx, "u2", now)
	require.NoError(t, err)
	assert.Zero(t, other.Current)
}

func TestWeightTrendNoEntryOldEnough(t *testing.T) {
	svc := NewProgressService(memory.NewWeightStore(), logging.NewNop())
	ctx := context.Background()
	now := time.Now()
	_, err := svc.LogWeight(ctx, "u1", 80, now.AddDate(0, 0, -3))
	require.NoError(t, err)
	_, err = svc.LogWeight(ctx, "u1", 79, now.AddDate(0, 0, -1))
	require.NoError(t, err)

	trend, err := svc.WeightTrend(ctx, "u1", now)
	require.NoError(t, err)
	assert.Equal(t, 79.0, trend.Current)
	assert.Zero(t, trend.Change)
	assert.Equal(t, 79.5, trend.Average)
}

func TestLogWeightRejectsNonPositive(t *testing.T) {
	svc := NewProgressService(memory.NewWeightStore(), logging.NewNop())
	_, err := svc.LogWeight(context.Background(), "u1", 0, time.Now())
	assert.ErrorIs(t, err, ErrValidationFailed)
	_, err = svc.LogWeight(context.Background(), "u1", -70, time.Now())
	assert.ErrorIs(t, err, ErrValidationFailed)
}
