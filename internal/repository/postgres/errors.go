package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	// undefinedColumnCode is returned when a query references a column the
	// table does not have (e.g. an "order" column missing from an older schema).
	undefinedColumnCode = "42703"
)

// isUndefinedColumn checks if the given error is a PostgreSQL undefined-column error.
// List queries use it to fall back to a different sort column.
func isUndefinedColumn(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == undefinedColumnCode
}
