package domain

import (
	"time"
)

// User is an account that can sign in to the app.
type User struct {
	ID           string    `bson:"_id" json:"id"`      // uuid string
	Email        string    `bson:"email" json:"email"` // unique, stored lowercase
	FullName     string    `bson:"fullName,omitempty" json:"fullName,omitempty"`
	AvatarURL    string    `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	PasswordHash string    `bson:"passwordHash" json:"-"` // Never expose this via JSON
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
