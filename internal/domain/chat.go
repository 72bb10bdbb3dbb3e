package domain

import "time"

// Chat es una sesion de conversacion con el asistente de viajes.
type Chat struct {
	ID        string    `json:"id"`
	UserID    *string   `json:"user_id,omitempty"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}
