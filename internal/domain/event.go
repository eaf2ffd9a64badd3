package domain

import (
	"time"
)

// WorkoutEventType names a change to the workout store.
type WorkoutEventType string

const (
	WorkoutCreated WorkoutEventType = "workout.created"
	WorkoutUpdated WorkoutEventType = "workout.updated"
	WorkoutDeleted WorkoutEventType = "workout.deleted"
)

// WorkoutEvent is broadcast to every connected client after a store change.
// Workout is nil for deletions.
type WorkoutEvent struct {
	Type      WorkoutEventType `json:"type"`
	WorkoutID int64            `json:"workoutId"`
	Workout   *Workout         `json:"workout,omitempty"`
	At        time.Time        `json:"at"`
}
