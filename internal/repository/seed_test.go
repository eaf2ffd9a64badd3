package repository_test

import (
	"alcyxob/workout-tracker/internal/repository"
	"alcyxob/workout-tracker/internal/repository/memory"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedOnlyWhenEmpty(t *testing.T) {
	ctx := context.Background()
	store := memory.NewWorkoutStore()

	n, err := repository.Seed(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = repository.Seed(ctx, store)
	require.NoError(t, err)
	assert.Zero(t, n)

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	templates := 0
	for _, w := range all {
		if w.IsTemplate {
			templates++
		}
		assert.NotEmpty(t, w.Image)
	}
	assert.Equal(t, 2, templates)
}
