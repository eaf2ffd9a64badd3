// internal/domain/workout.go
package domain

import (
	"time"
)

// DefaultWorkoutImage is shown when the first exercise has no catalog image.
const DefaultWorkoutImage = "https://images.pexels.com/photos/1552242/pexels-photo-1552242.jpeg"

// Workout is a named, day-assigned collection of exercises with logged set weights.
type Workout struct {
	ID              int64      `bson:"_id" json:"id"`
	Name            string     `bson:"name" json:"name"` // target muscle or title
	Day             Weekday    `bson:"day" json:"day"`
	Reps            int        `bson:"reps" json:"reps"`   // informational only
	Image           string     `bson:"image" json:"image"` // URL, placeholder, or "object:<key>"
	Exercises       []Exercise `bson:"exercises" json:"exercises"`
	IsTemplate      bool       `bson:"isTemplate" json:"isTemplate"`
	DurationMinutes int        `bson:"durationMinutes,omitempty" json:"durationMinutes,omitempty"`
	Date            time.Time  `bson:"date" json:"date"`
	CreatedAt       time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// Clone returns a deep copy so stored records cannot be aliased by callers.
func (w Workout) Clone() Workout {
	out := w
	if w.Exercises != nil {
		out.Exercises = make([]Exercise, len(w.Exercises))
		for i, ex := range w.Exercises {
			out.Exercises[i] = ex.Clone()
		}
	}
	return out
}
