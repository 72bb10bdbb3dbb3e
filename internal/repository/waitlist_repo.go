package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"travelpal/internal/domain"
)

// WaitlistRepository define el contrato de persistencia para la waitlist.
type WaitlistRepository interface {
	Create(ctx context.Context, entry domain.WaitlistEntry) error
	GetByEmail(ctx context.Context, email string) (domain.WaitlistEntry, error)
}

type PgWaitlistRepository struct {
	pool *pgxpool.Pool
}

func NewPgWaitlistRepository(pool *pgxpool.Pool) *PgWaitlistRepository {
	return &PgWaitlistRepository{pool: pool}
}

func (r *PgWaitlistRepository) Create(ctx context.Context, entry domain.WaitlistEntry) error {
	const query = `
		INSERT INTO waitlist (id, name, email, travel_interests, newsletter, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		entry.ID,
		entry.Name,
		entry.Email,
		entry.TravelInterests,
		entry.Newsletter,
		entry.CreatedAt,
	)
	return err
}

func (r *PgWaitlistRepository) GetByEmail(ctx context.Context, email string) (domain.WaitlistEntry, error) {
	const query = `
		SELECT id, name, email, travel_interests, newsletter, created_at
		FROM waitlist
		WHERE email = $1
	`
	var entry domain.WaitlistEntry
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&entry.ID,
		&entry.Name,
		&entry.Email,
		&entry.TravelInterests,
		&entry.Newsletter,
		&entry.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.WaitlistEntry{}, err
	}
	return entry, err
}
