// Package validation contains the request validation plumbing.
//
// Request payload types implement Validatable and return *errs.HTTPError
// values with exact client-facing messages; BindAndValidate wires Echo's
// binding into that contract.
package validation

import (
	"github.com/freightwise/rates-api/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Validatable is implemented by request payload types that know how to
// validate themselves. Validate returns nil or an *errs.HTTPError carrying
// the message the client should see.
type Validatable interface {
	Validate() error
}

// BindAndValidate binds the request into payload and validates it.
//
// payload must be a pointer so Echo's Bind can populate it. Validation
// errors that already are *errs.HTTPError pass through unchanged, preserving
// the exact ordered messages the endpoint contract specifies; anything else
// is wrapped into a generic 400.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError("Malformed request")
	}

	if err := payload.Validate(); err != nil {
		var httpErr *errs.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}
		return errs.NewBadRequestError(err.Error())
	}

	return nil
}
