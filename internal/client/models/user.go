// Package models defines the account shapes exchanged with the vineauth API.
package models

import "time"

// User is the account summary returned on login.
type User struct {
	ID        string    `json:"_id"`
	UserName  string    `json:"userName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"date"`
}

// Profile is the extended account data returned by getuser.
type Profile struct {
	ID               string `json:"_id"`
	UserID           string `json:"user"`
	UserName         string `json:"userName"`
	Email            string `json:"email"`
	Phone            string `json:"phone,omitempty"`
	Address          string `json:"address,omitempty"`
	Country          string `json:"country,omitempty"`
	FullName         string `json:"fullName,omitempty"`
	NationalIDNumber string `json:"bvn,omitempty"`
	Gender           string `json:"gender,omitempty"`
	DateOfBirth      string `json:"dateOfBirth,omitempty"`
}

// Registration is the createuser payload.
type Registration struct {
	Email            string `json:"email"`
	UserName         string `json:"userName"`
	Password         string `json:"password"`
	PhoneNumber      string `json:"phoneNumber,omitempty"`
	Address          string `json:"address,omitempty"`
	Country          string `json:"country,omitempty"`
	FullName         string `json:"fullName,omitempty"`
	NationalIDNumber string `json:"bvn,omitempty"`
	Gender           string `json:"gender,omitempty"`
	DateOfBirth      string `json:"dateOfBirth,omitempty"`
}
