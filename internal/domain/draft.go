package domain

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by draft edits that address a missing exercise or set.
var ErrIndexOutOfRange = errors.New("index out of range")

// WorkoutDraft is unsaved form state held by a create or edit flow.
// Nothing in a draft reaches the store until it is validated and committed.
type WorkoutDraft struct {
	Name            string     `json:"name"`
	Day             Weekday    `json:"day"`
	Reps            int        `json:"reps,omitempty"`
	DurationMinutes int        `json:"durationMinutes,omitempty"`
	IsTemplate      bool       `json:"isTemplate,omitempty"`
	Exercises       []Exercise `json:"exercises"`
}

// DraftFromWorkout seeds an edit draft with a copy of the stored workout.
func DraftFromWorkout(w Workout) WorkoutDraft {
	c := w.Clone()
	return WorkoutDraft{
		Name:            c.Name,
		Day:             c.Day,
		Reps:            c.Reps,
		DurationMinutes: c.DurationMinutes,
		IsTemplate:      c.IsTemplate,
		Exercises:       c.Exercises,
	}
}

func (d *WorkoutDraft) SetName(name string) {
	d.Name = name
}

// SetDay parses and assigns the day; the draft is unchanged on error.
func (d *WorkoutDraft) SetDay(day string) error {
	wd, err := ParseWeekday(day)
	if err != nil {
		return err
	}
	d.Day = wd
	return nil
}

// AddExercise appends an exercise with the given per-set weights.
func (d *WorkoutDraft) AddExercise(name string, weights ...float64) {
	d.Exercises = append(d.Exercises, Exercise{Name: name, Weights: append([]float64{}, weights...)})
}

// AddExerciseSets appends an exercise with n zero-valued sets to be filled in.
func (d *WorkoutDraft) AddExerciseSets(name string, n int) {
	if n < 0 {
		n = 0
	}
	d.Exercises = append(d.Exercises, Exercise{Name: name, Weights: make([]float64, n)})
}

func (d *WorkoutDraft) RemoveExercise(i int) error {
	if err := d.checkExercise(i); err != nil {
		return err
	}
	d.Exercises = append(d.Exercises[:i], d.Exercises[i+1:]...)
	return nil
}

// AddSet appends a zero-valued set to exercise i. The zero fails save
// validation until a weight is supplied.
func (d *WorkoutDraft) AddSet(i int) error {
	if err := d.checkExercise(i); err != nil {
		return err
	}
	d.Exercises[i].Weights = append(d.Exercises[i].Weights, 0)
	return nil
}

// RemoveSet drops set s (0-based) from exercise i; later sets shift down.
func (d *WorkoutDraft) RemoveSet(i, s int) error {
	if err := d.checkSet(i, s); err != nil {
		return err
	}
	w := d.Exercises[i].Weights
	d.Exercises[i].Weights = append(w[:s], w[s+1:]...)
	return nil
}

func (d *WorkoutDraft) SetWeight(i, s int, weight float64) error {
	if err := d.checkSet(i, s); err != nil {
		return err
	}
	d.Exercises[i].Weights[s] = weight
	return nil
}

func (d *WorkoutDraft) checkExercise(i int) error {
	if i < 0 || i >= len(d.Exercises) {
		return fmt.Errorf("%w: exercise %d of %d", ErrIndexOutOfRange, i, len(d.Exercises))
	}
	return nil
}

func (d *WorkoutDraft) checkSet(i, s int) error {
	if err := d.checkExercise(i); err != nil {
		return err
	}
	if n := len(d.Exercises[i].Weights); s < 0 || s >= n {
		return fmt.Errorf("%w: set %d of %d", ErrIndexOutOfRange, s, n)
	}
	return nil
}
