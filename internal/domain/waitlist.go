package domain

import "time"

// WaitlistEntry es un registro insert-only de la lista de espera.
// El email es unico; el duplicado se rechaza antes del insert y el
// constraint del store es la garantia real.
type WaitlistEntry struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	TravelInterests *string   `json:"travel_interests,omitempty"`
	Newsletter      bool      `json:"newsletter"`
	CreatedAt       time.Time `json:"created_at"`
}
