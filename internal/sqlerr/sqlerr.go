// Package sqlerr translates database driver errors into the API error type.
//
// The service is read-only, so the mapping is deliberately narrow: a missing
// row becomes a 404 and everything else a generic 500. SQLSTATE detail never
// reaches the caller; the global error handler logs the original error.
package sqlerr

import (
	"context"
	"database/sql"
	"errors"

	"github.com/freightwise/rates-api/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Code is a coarse category for a database failure, used by logging to tag
// what went wrong without parsing SQLSTATE at every call site.
type Code string

const (
	NoRows       Code = "no_rows"
	Canceled     Code = "canceled"
	Unavailable  Code = "unavailable"
	QueryFailure Code = "query_failure"
	Other        Code = "other"
)

// Classify maps an error from a pgx call onto a Code.
func Classify(err error) Code {
	switch {
	case err == nil:
		return Other
	case errors.Is(err, pgx.ErrNoRows), errors.Is(err, sql.ErrNoRows):
		return NoRows
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return Canceled
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		// Class 08 is connection exceptions, 57 operator intervention
		// (includes query_canceled and shutdown states).
		if len(pgerr.Code) >= 2 {
			switch pgerr.Code[:2] {
			case "08", "57":
				return Unavailable
			}
		}
		return QueryFailure
	}

	return Other
}

// HandleError converts a low-level database error into an *errs.HTTPError.
// Errors that already are *errs.HTTPError pass through unchanged so layers
// above the repositories can pre-shape their own responses.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	if Classify(err) == NoRows {
		return errs.NewNotFoundError("Resource not found")
	}

	return errs.NewInternalServerError()
}
