package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"travelpal/internal/domain"
)

// ChatRepository define el contrato de persistencia para chats.
type ChatRepository interface {
	Create(ctx context.Context, chat domain.Chat) error
	GetByID(ctx context.Context, id string) (domain.Chat, error)
}

// PgChatRepository implementa ChatRepository usando pgxpool.
type PgChatRepository struct {
	pool *pgxpool.Pool
}

func NewPgChatRepository(pool *pgxpool.Pool) *PgChatRepository {
	return &PgChatRepository{pool: pool}
}

func (r *PgChatRepository) Create(ctx context.Context, chat domain.Chat) error {
	const query = `
		INSERT INTO chats (id, user_id, title, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.pool.Exec(ctx, query,
		chat.ID,
		chat.UserID,
		chat.Title,
		chat.CreatedAt,
	)
	return err
}

func (r *PgChatRepository) GetByID(ctx context.Context, id string) (domain.Chat, error) {
	const query = `
		SELECT id, user_id, title, created_at
		FROM chats
		WHERE id = $1
	`
	var chat domain.Chat
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&chat.ID,
		&chat.UserID,
		&chat.Title,
		&chat.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Chat{}, err
	}
	return chat, err
}
