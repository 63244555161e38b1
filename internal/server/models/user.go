package models

import "time"

// User is an account record. Password holds the bcrypt hash and is never
// serialized.
type User struct {
	ID        string    `json:"_id"`
	UserName  string    `json:"userName"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"date"`
}
