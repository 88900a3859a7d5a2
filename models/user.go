package models

import (
	"time"
)

type User struct {
	// User information
	ID        string    `bson:"_id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	LastLogin time.Time `bson:"last_login" json:"last_login"`

	// Watchlist - ids of movies this user has added, in insertion order
	Movies []string `bson:"movies" json:"movies"`
}

// NewUser builds a user with an empty watchlist. The password must
// already be hashed by the caller.
func NewUser(id, email, hashedPassword string) *User {
	return &User{
		ID:        id,
		Email:     email,
		Password:  hashedPassword,
		CreatedAt: time.Now(),
		Movies:    []string{},
	}
}
