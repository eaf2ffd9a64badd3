package domain

import (
	"time"
)

// Meal is a calorie-tracked food entry.
type Meal struct {
	ID        string    `bson:"_id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Name      string    `bson:"name" json:"name"`
	Calories  int       `bson:"calories" json:"calories"`
	Time      string    `bson:"time" json:"time"` // free text as entered, e.g. "8:00 AM"
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
