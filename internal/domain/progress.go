package domain

import (
	"time"
)

// WeightEntry is one body-weight measurement logged by a user.
type WeightEntry struct {
	ID        string    `bson:"_id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Value     float64   `bson:"value" json:"value"`
	Date      time.Time `bson:"date" json:"date"` // when the measurement was taken
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// WeightTrend summarises a user's weight history.
type WeightTrend struct {
	Current float64 `json:"current"`
	Change  float64 `json:"change"` // vs. roughly one month ago
	Average float64 `json:"average"`
}
