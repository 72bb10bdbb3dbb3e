package domain

import "time"

type User struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	PasswordHash    string    `json:"-"`
	Email           string    `json:"email"`
	TravelInterests *string   `json:"travel_interests,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
