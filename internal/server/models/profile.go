package models

// Profile holds the extended attributes of a user, one per account.
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
