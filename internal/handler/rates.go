package handler

import (
	"context"
	"time"

	"github.com/freightwise/rates-api/internal/errs"
	"github.com/freightwise/rates-api/internal/model"
	"github.com/freightwise/rates-api/internal/server"
	"github.com/freightwise/rates-api/internal/service"
	"github.com/labstack/echo/v4"
)

// dayFormat is the accepted (and produced) calendar day format.
const dayFormat = "2006-01-02"

// RatesFetcher is the service dependency of the rates endpoint.
type RatesFetcher interface {
	DailyRates(ctx context.Context, q service.RatesQuery) ([]model.DailyRate, error)
}

// RatesHandler serves GET /rates.
type RatesHandler struct {
	Handler
	rates RatesFetcher
}

// NewRatesHandler constructs the rates handler.
func NewRatesHandler(s *server.Server, rates RatesFetcher) *RatesHandler {
	return &RatesHandler{
		Handler: NewHandler(s),
		rates:   rates,
	}
}

// GetRatesRequest carries the query parameters of GET /rates.
type GetRatesRequest struct {
	DateFrom    string `query:"date_from"`
	DateTo      string `query:"date_to"`
	Origin      string `query:"origin"`
	Destination string `query:"destination"`

	// Parsed by Validate so the endpoint does not parse twice.
	from time.Time
	to   time.Time
}

// Validate applies the ordered request checks, each short-circuiting with
// the exact client-facing message: presence of all four parameters, date
// format, then range direction (date_from must be strictly earlier).
func (r *GetRatesRequest) Validate() error {
	if r.DateFrom == "" || r.DateTo == "" || r.Origin == "" || r.Destination == "" {
		return errs.NewBadRequestError("Missing query parameters")
	}

	var err error
	if r.from, err = time.Parse(dayFormat, r.DateFrom); err != nil {
		return errs.NewBadRequestError("Invalid date format")
	}
	if r.to, err = time.Parse(dayFormat, r.DateTo); err != nil {
		return errs.NewBadRequestError("Invalid date format")
	}

	if !r.from.Before(r.to) {
		return errs.NewBadRequestError("Invalid date range")
	}

	return nil
}

// GetRates returns the ordered daily averages for the validated request.
// The body is always a JSON array, never null.
func (h *RatesHandler) GetRates(c echo.Context, req *GetRatesRequest) ([]model.DailyRate, error) {
	rates, err := h.rates.DailyRates(c.Request().Context(), service.RatesQuery{
		From:        req.from,
		To:          req.to,
		Origin:      req.Origin,
		Destination: req.Destination,
	})
	if err != nil {
		return nil, err
	}

	if rates == nil {
		rates = []model.DailyRate{}
	}
	return rates, nil
}
