package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"travelpal/internal/domain"
)

// ItineraryRepository define el contrato de persistencia para itinerarios.
type ItineraryRepository interface {
	Create(ctx context.Context, itinerary domain.Itinerary) error
	GetByID(ctx context.Context, id string) (domain.Itinerary, error)
}

type PgItineraryRepository struct {
	pool *pgxpool.Pool
}

func NewPgItineraryRepository(pool *pgxpool.Pool) *PgItineraryRepository {
	return &PgItineraryRepository{pool: pool}
}

func (r *PgItineraryRepository) Create(ctx context.Context, itinerary domain.Itinerary) error {
	content, err := json.Marshal(itinerary.Content)
	if err != nil {
		return fmt.Errorf("marshal content: %w", err)
	}

	const query = `
		INSERT INTO itineraries (id, user_id, chat_id, destination, start_date, end_date, title, budget, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = r.pool.Exec(ctx, query,
		itinerary.ID,
		itinerary.UserID,
		itinerary.ChatID,
		itinerary.Destination,
		itinerary.StartDate,
		itinerary.EndDate,
		itinerary.Title,
		itinerary.Budget,
		content,
		itinerary.CreatedAt,
	)
	return err
}

func (r *PgItineraryRepository) GetByID(ctx context.Context, id string) (domain.Itinerary, error) {
	const query = `
		SELECT id, user_id, chat_id, destination, start_date, end_date, title, budget, content, created_at
		FROM itineraries
		WHERE id = $1
	`
	var it domain.Itinerary
	var content []byte

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&it.ID,
		&it.UserID,
		&it.ChatID,
		&it.Destination,
		&it.StartDate,
		&it.EndDate,
		&it.Title,
		&it.Budget,
		&content,
		&it.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Itinerary{}, err
	}
	if err != nil {
		return domain.Itinerary{}, err
	}

	if err := json.Unmarshal(content, &it.Content); err != nil {
		return domain.Itinerary{}, fmt.Errorf("unmarshal content: %w", err)
	}
	return it, nil
}
