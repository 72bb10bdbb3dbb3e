package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrInvalidRole se devuelve cuando un mensaje llega a la frontera de
// persistencia con un rol fuera del conjunto cerrado.
var ErrInvalidRole = errors.New("invalid message role")

// IsUniqueViolation detecta la violacion de un constraint UNIQUE del
// store. El chequeo previo al insert es best-effort; este es el guard real.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
