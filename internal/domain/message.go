package domain

import "time"

// Message es un turno dentro de un Chat. Los mensajes son append-only:
// nunca se actualizan ni se borran, y su orden de creacion es el unico
// orden valido para reconstruir el contexto conversacional.
type Message struct {
	ID        string    `json:"id"`
	ChatID    string    `json:"chat_id"`
	Content   string    `json:"content"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
