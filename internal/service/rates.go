package service

import (
	"context"
	"fmt"
	"time"

	"github.com/freightwise/rates-api/internal/errs"
	"github.com/freightwise/rates-api/internal/model"
	"github.com/freightwise/rates-api/internal/repository"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// GeoRepository is the subset of the geography repository the rates service
// depends on.
type GeoRepository interface {
	PortExists(ctx context.Context, code string) (bool, error)
	RegionExists(ctx context.Context, slug string) (bool, error)
	PortsInRegion(ctx context.Context, slug string) ([]string, error)
}

// PriceRepository computes the calendar-complete daily averages.
type PriceRepository interface {
	DailyAverages(ctx context.Context, from, to time.Time, originCodes, destCodes []string) ([]model.DailyRate, error)
}

// RatesQuery is a validated rates request: both endpoints are either a port
// code or a region slug, and From does not come after To.
type RatesQuery struct {
	From        time.Time
	To          time.Time
	Origin      string
	Destination string
}

// RatesService resolves origin and destination identifiers to port-code sets
// and runs the daily average aggregation over them.
type RatesService struct {
	log    *zerolog.Logger
	geo    GeoRepository
	prices PriceRepository
}

// NewRatesService constructs the rates service.
func NewRatesService(logger *zerolog.Logger, geo GeoRepository, prices PriceRepository) *RatesService {
	return &RatesService{
		log:    logger,
		geo:    geo,
		prices: prices,
	}
}

// DailyRates returns one entry per calendar day in the query's inclusive
// range, ascending, with the rounded average price of the matching records
// or null for days with fewer than three.
func (s *RatesService) DailyRates(ctx context.Context, q RatesQuery) ([]model.DailyRate, error) {
	originCodes, err := s.resolve(ctx, "origin", q.Origin)
	if err != nil {
		return nil, err
	}

	destCodes, err := s.resolve(ctx, "destination", q.Destination)
	if err != nil {
		return nil, err
	}

	rates, err := s.prices.DailyAverages(ctx, q.From, q.To, originCodes, destCodes)
	if err != nil {
		return nil, err
	}

	return rates, nil
}

// resolve turns an origin or destination identifier into its port-code set:
// a singleton for a literal port code, the recursive region expansion for a
// slug. Unknown identifiers become 400s naming the side and the identifier.
// An empty expansion is a valid outcome, not an error.
func (s *RatesService) resolve(ctx context.Context, role, identifier string) ([]string, error) {
	if IsPortCode(identifier) {
		exists, err := s.geo.PortExists(ctx, identifier)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, errs.NewBadRequestError(fmt.Sprintf("Unknown %s port code: %s", role, identifier))
		}
		return []string{identifier}, nil
	}

	exists, err := s.geo.RegionExists(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewBadRequestError(fmt.Sprintf("Unknown %s region slug: %s", role, identifier))
	}

	codes, err := s.geo.PortsInRegion(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrCycleDetected) {
			s.log.Error().Str("slug", identifier).Msg("region hierarchy contains a cycle")
			return nil, errs.NewInternalServerError()
		}
		return nil, err
	}

	return codes, nil
}
