package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinsCoverEveryCategory(t *testing.T) {
	for _, c := range Categories() {
		assert.NotEmpty(t, ByCategory(c), c)
	}
	for _, b := range Builtins() {
		_, ok := CanonicalCategory(b.Category)
		assert.True(t, ok, b.Name)
	}
}

func TestLookupIgnoresCase(t *testing.T) {
	info, ok := Lookup("  bench press ")
	require.True(t, ok)
	assert.Equal(t, "Bench Press", info.Name)
	assert.Equal(t, "Chest", info.Category)
	assert.NotEmpty(t, ImageFor("Squats"))
	assert.Empty(t, ImageFor("Zercher Carry"))
}

func TestBuiltinsReturnsCopies(t *testing.T) {
	b := Builtins()
	b[0].PrimaryMuscles[0] = "changed"
	assert.NotEqual(t, "changed", Builtins()[0].PrimaryMuscles[0])
}

func TestPickerCustomAndRemoved(t *testing.T) {
	p := NewPicker()

	require.NoError(t, p.AddCustom("chest", "Cable Fly"))
	assert.ErrorIs(t, p.AddCustom("Chest", "cable fly"), ErrDuplicateExercise)
	assert.ErrorIs(t, p.AddCustom("Chest", "Bench Press"), ErrDuplicateExercise)
	assert.ErrorIs(t, p.AddCustom("Neck", "Shrug"), ErrUnknownCategory)
	assert.ErrorIs(t, p.AddCustom("Chest", "  "), ErrEmptyName)

	require.NoError(t, p.Remove("Chest", "Push-ups"))
	opts, err := p.Options("Chest")
	require.NoError(t, err)
	names := make([]string, len(opts))
	for i, o := range opts {
		names[i] = o.Name
	}
	assert.Equal(t, []string{"Bench Press", "Cable Fly"}, names)
	assert.True(t, opts[1].Custom)

	// Hiding is session-local: the table is untouched.
	assert.Len(t, ByCategory("Chest"), 2)

	require.NoError(t, p.Restore("Chest", "push-ups"))
	opts, _ = p.Options("Chest")
	assert.Len(t, opts, 3)

	require.NoError(t, p.Remove("Chest", "Cable Fly"))
	opts, _ = p.Options("Chest")
	assert.Len(t, opts, 2)

	assert.ErrorIs(t, p.Remove("Chest", "Squats"), ErrUnknownExercise)
}

func TestPickerAddCustomUnhidesBuiltin(t *testing.T) {
	p := NewPicker()
	require.NoError(t, p.Remove("Legs", "Lunges"))
	require.NoError(t, p.AddCustom("Legs", "lunges"))
	opts, _ := p.Options("Legs")
	for _, o := range opts {
		assert.False(t, o.Custom)
	}
	assert.Len(t, opts, 3)
}

func TestPickerSearch(t *testing.T) {
	p := NewPicker()
	require.NoError(t, p.AddCustom("Arms", "Hammer Curls"))
	got := p.Search("CURL")
	require.Len(t, got, 2)
	assert.Equal(t, "Bicep Curls", got[0].Name)
	assert.Equal(t, "Hammer Curls", got[1].Name)
	assert.Len(t, p.Search(""), len(Builtins())+1)
}

func TestSessionsExpireAndClose(t *testing.T) {
	now := time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)
	s := NewSessions(time.Minute)
	s.now = func() time.Time { return now }

	id, p := s.Open()
	got, ok := s.Get(id)
	require.True(t, ok)
	assert.Same(t, p, got)

	now = now.Add(2 * time.Minute)
	_, ok = s.Get(id)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())

	id2, _ := s.Open()
	id3, _ := s.Open()
	s.Close(id2)
	_, ok = s.Get(id2)
	assert.False(t, ok)

	now = now.Add(2 * time.Minute)
	assert.Equal(t, 1, s.Sweep())
	_, ok = s.Get(id3)
	assert.False(t, ok)
}
