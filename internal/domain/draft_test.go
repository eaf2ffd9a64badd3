package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func benchDraft() WorkoutDraft {
	d := WorkoutDraft{Name: "Chest", Day: Tuesday}
	d.AddExercise("Bench Press", 40, 40)
	return d
}

func TestDraftRemoveSetShiftsLaterSets(t *testing.T) {
	d := WorkoutDraft{}
	d.AddExercise("Squats", 50, 55, 60)
	require.NoError(t, d.RemoveSet(0, 1))
	assert.Equal(t, []float64{50, 60}, d.Exercises[0].Weights)
}

func TestDraftAddSetAppendsZero(t *testing.T) {
	d := benchDraft()
	require.NoError(t, d.RemoveSet(0, 1))
	assert.Equal(t, []float64{40}, d.Exercises[0].Weights)

	require.NoError(t, d.AddSet(0))
	assert.Equal(t, []float64{40, 0}, d.Exercises[0].Weights)

	require.NoError(t, d.SetWeight(0, 1, 42.5))
	assert.Equal(t, []float64{40, 42.5}, d.Exercises[0].Weights)
}

func TestDraftIndexErrors(t *testing.T) {
	d := benchDraft()
	assert.ErrorIs(t, d.AddSet(1), ErrIndexOutOfRange)
	assert.ErrorIs(t, d.RemoveSet(0, 2), ErrIndexOutOfRange)
	assert.ErrorIs(t, d.SetWeight(-1, 0, 10), ErrIndexOutOfRange)
	assert.ErrorIs(t, d.RemoveExercise(3), ErrIndexOutOfRange)
	assert.Equal(t, []float64{40, 40}, d.Exercises[0].Weights)
}

func TestDraftExerciseEdits(t *testing.T) {
	d := benchDraft()
	d.AddExerciseSets("Pull-ups", 3)
	require.Len(t, d.Exercises, 2)
	assert.Equal(t, 3, d.Exercises[1].SetCount())
	assert.Equal(t, []float64{0, 0, 0}, d.Exercises[1].Weights)

	require.NoError(t, d.RemoveExercise(0))
	require.Len(t, d.Exercises, 1)
	assert.Equal(t, "Pull-ups", d.Exercises[0].Name)

	d.AddExerciseSets("Plank", -2)
	assert.Empty(t, d.Exercises[1].Weights)
}

func TestDraftSetDay(t *testing.T) {
	d := benchDraft()
	require.NoError(t, d.SetDay("Friday"))
	assert.Equal(t, Friday, d.Day)

	assert.ErrorIs(t, d.SetDay("someday"), ErrInvalidWeekday)
	assert.Equal(t, Friday, d.Day)
}

func TestDraftFromWorkoutIsACopy(t *testing.T) {
	w := Workout{ID: 7, Name: "Legs", Day: Monday, Exercises: []Exercise{{Name: "Squats", Weights: []float64{50}}}}
	d := DraftFromWorkout(w)
	require.NoError(t, d.SetWeight(0, 0, 99))
	d.SetName("Changed")

	assert.Equal(t, "Legs", w.Name)
	assert.Equal(t, []float64{50}, w.Exercises[0].Weights)
}
