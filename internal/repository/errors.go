package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"workboard/internal/apperr"
)

// Postgres error codes worth translating for clients. Everything else stays
// an internal error.
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgNotNullViolation:
			return apperr.Validationf("column %q cannot be null", pgErr.ColumnName)
		case pgForeignKeyViolation:
			return apperr.Conflictf("%s", pgErr.Message)
		case pgUniqueViolation:
			return apperr.Conflictf("%s", pgErr.Message)
		}
	}
	return err
}
