package sqlerr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/freightwise/rates-api/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{name: "nil", err: nil, want: Other},
		{name: "no rows", err: pgx.ErrNoRows, want: NoRows},
		{name: "wrapped no rows", err: fmt.Errorf("scanning: %w", pgx.ErrNoRows), want: NoRows},
		{name: "deadline", err: context.DeadlineExceeded, want: Canceled},
		{name: "canceled", err: context.Canceled, want: Canceled},
		{name: "connection exception", err: &pgconn.PgError{Code: "08006"}, want: Unavailable},
		{name: "operator intervention", err: &pgconn.PgError{Code: "57014"}, want: Unavailable},
		{name: "syntax error", err: &pgconn.PgError{Code: "42601"}, want: QueryFailure},
		{name: "plain error", err: errors.New("boom"), want: Other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.want {
				t.Errorf("Classify(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestHandleError(t *testing.T) {
	t.Run("http errors pass through unchanged", func(t *testing.T) {
		in := errs.NewBadRequestError("Invalid date range")
		if got := HandleError(in); got != in {
			t.Errorf("HandleError rewrapped an *errs.HTTPError: %v", got)
		}
	})

	t.Run("no rows becomes 404", func(t *testing.T) {
		var httpErr *errs.HTTPError
		if !errors.As(HandleError(pgx.ErrNoRows), &httpErr) {
			t.Fatal("expected *errs.HTTPError")
		}
		if httpErr.Status != http.StatusNotFound {
			t.Errorf("status = %d, want %d", httpErr.Status, http.StatusNotFound)
		}
	})

	t.Run("driver detail never reaches the client", func(t *testing.T) {
		in := &pgconn.PgError{Code: "42601", Message: "syntax error at or near"}
		var httpErr *errs.HTTPError
		if !errors.As(HandleError(in), &httpErr) {
			t.Fatal("expected *errs.HTTPError")
		}
		if httpErr.Status != http.StatusInternalServerError {
			t.Errorf("status = %d, want %d", httpErr.Status, http.StatusInternalServerError)
		}
		if httpErr.Message != http.StatusText(http.StatusInternalServerError) {
			t.Errorf("message = %q leaked detail", httpErr.Message)
		}
	})
}
