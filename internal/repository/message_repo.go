package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"travelpal/internal/domain"
)

// MessageRepository define el contrato de persistencia para mensajes.
// Los mensajes son append-only: no hay update ni delete.
type MessageRepository interface {
	Create(ctx context.Context, message domain.Message) error
	ListByChatID(ctx context.Context, chatID string) ([]domain.Message, error)
}

type PgMessageRepository struct {
	pool *pgxpool.Pool
}

func NewPgMessageRepository(pool *pgxpool.Pool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

func (r *PgMessageRepository) Create(ctx context.Context, message domain.Message) error {
	// El rol se valida una sola vez, aca en la frontera de persistencia.
	if !message.Role.Valid() {
		return ErrInvalidRole
	}

	const query = `
		INSERT INTO messages (id, chat_id, content, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query,
		message.ID,
		message.ChatID,
		message.Content,
		string(message.Role),
		message.CreatedAt,
	)
	return err
}

func (r *PgMessageRepository) ListByChatID(ctx context.Context, chatID string) ([]domain.Message, error) {
	const query = `
		SELECT id, chat_id, content, role, created_at
		FROM messages
		WHERE chat_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, chatID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var msg domain.Message
		var role string

		err = rows.Scan(
			&msg.ID,
			&msg.ChatID,
			&msg.Content,
			&role,
			&msg.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		msg.Role = domain.Role(role)
		messages = append(messages, msg)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}
