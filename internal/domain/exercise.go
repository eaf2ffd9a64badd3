// internal/domain/exercise.go
package domain

// Exercise is a movement within a workout. Weights holds one entry per set;
// index+1 is the set number shown to the user.
type Exercise struct {
	Name    string    `bson:"name" json:"name"`
	Weights []float64 `bson:"weights" json:"weights"`
}

// Clone copies the exercise including its weights.
func (e Exercise) Clone() Exercise {
	out := Exercise{Name: e.Name}
	if e.Weights != nil {
		out.Weights = append([]float64(nil), e.Weights...)
	}
	return out
}

// SetCount is the number of logged sets.
func (e Exercise) SetCount() int {
	return len(e.Weights)
}

// ExerciseInfo describes a built-in movement in the reference catalog.
type ExerciseInfo struct {
	Name           string   `json:"name"`
	Category       string   `json:"category"` // e.g., "Chest", "Legs", "Cardio"
	Equipment      string   `json:"equipment,omitempty"`
	Description    string   `json:"description,omitempty"`
	PrimaryMuscles []string `json:"primaryMuscles,omitempty"`
	ImageURL       string   `json:"imageUrl,omitempty"`
	Custom         bool     `json:"custom,omitempty"` // user-added for the current picker session
}
