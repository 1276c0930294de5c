package postgres

import (
	"database/sql"
	"errors"
)

// isNotFound distinguishes an empty result from a real query failure.
// Repositories translate it into the (value, ok, error) miss convention.
func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
