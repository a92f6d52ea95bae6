package service

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"sort"
	"testing"
	"time"

	"github.com/freightwise/rates-api/internal/errs"
	"github.com/freightwise/rates-api/internal/model"
	"github.com/freightwise/rates-api/internal/repository"
	"github.com/rs/zerolog"
)

// fakeGeo serves geography lookups from in-memory maps. regions maps a known
// slug to the port codes of its full recursive expansion.
type fakeGeo struct {
	ports     map[string]bool
	regions   map[string][]string
	expandErr error
}

func (f *fakeGeo) PortExists(_ context.Context, code string) (bool, error) {
	return f.ports[code], nil
}

func (f *fakeGeo) RegionExists(_ context.Context, slug string) (bool, error) {
	_, ok := f.regions[slug]
	return ok, nil
}

func (f *fakeGeo) PortsInRegion(_ context.Context, slug string) ([]string, error) {
	if f.expandErr != nil {
		return nil, f.expandErr
	}
	return f.regions[slug], nil
}

// fakePrices records the port sets it was queried with.
type fakePrices struct {
	rates       []model.DailyRate
	err         error
	gotOrigins  []string
	gotDests    []string
	invocations int
}

func (f *fakePrices) DailyAverages(_ context.Context, _, _ time.Time, originCodes, destCodes []string) ([]model.DailyRate, error) {
	f.invocations++
	f.gotOrigins = originCodes
	f.gotDests = destCodes
	if f.err != nil {
		return nil, f.err
	}
	return f.rates, nil
}

func newTestGeo() *fakeGeo {
	return &fakeGeo{
		ports: map[string]bool{
			"CNSGH": true,
			"NLRTM": true,
			"NOOSL": true,
		},
		regions: map[string][]string{
			"china_main":        {"CNSGH", "CNQIN", "CNYTN"},
			"scandinavia":       {"NOOSL", "SEGOT", "DKAAR"},
			"empty_region":      {},
			"north_europe_main": {"NLRTM", "DEHAM", "BEANR"},
		},
	}
}

func testQuery(origin, destination string) RatesQuery {
	return RatesQuery{
		From:        time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC),
		To:          time.Date(2016, 1, 10, 0, 0, 0, 0, time.UTC),
		Origin:      origin,
		Destination: destination,
	}
}

func newTestService(geo GeoRepository, prices PriceRepository) *RatesService {
	logger := zerolog.Nop()
	return NewRatesService(&logger, geo, prices)
}

func TestDailyRatesPortToPort(t *testing.T) {
	prices := &fakePrices{rates: []model.DailyRate{{Day: "2016-01-01"}}}
	svc := newTestService(newTestGeo(), prices)

	got, err := svc.DailyRates(context.Background(), testQuery("CNSGH", "NLRTM"))
	if err != nil {
		t.Fatalf("DailyRates returned error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 rate, got %d", len(got))
	}
	if !reflect.DeepEqual(prices.gotOrigins, []string{"CNSGH"}) {
		t.Errorf("origin codes = %v, want [CNSGH]", prices.gotOrigins)
	}
	if !reflect.DeepEqual(prices.gotDests, []string{"NLRTM"}) {
		t.Errorf("destination codes = %v, want [NLRTM]", prices.gotDests)
	}
}

func TestDailyRatesRegionExpansion(t *testing.T) {
	prices := &fakePrices{}
	svc := newTestService(newTestGeo(), prices)

	if _, err := svc.DailyRates(context.Background(), testQuery("china_main", "scandinavia")); err != nil {
		t.Fatalf("DailyRates returned error: %v", err)
	}

	sort.Strings(prices.gotOrigins)
	if !reflect.DeepEqual(prices.gotOrigins, []string{"CNQIN", "CNSGH", "CNYTN"}) {
		t.Errorf("origin codes = %v, want the china_main expansion", prices.gotOrigins)
	}
	sort.Strings(prices.gotDests)
	if !reflect.DeepEqual(prices.gotDests, []string{"DKAAR", "NOOSL", "SEGOT"}) {
		t.Errorf("destination codes = %v, want the scandinavia expansion", prices.gotDests)
	}
}

func TestDailyRatesEmptyRegionIsValid(t *testing.T) {
	prices := &fakePrices{}
	svc := newTestService(newTestGeo(), prices)

	if _, err := svc.DailyRates(context.Background(), testQuery("empty_region", "NLRTM")); err != nil {
		t.Fatalf("DailyRates returned error for an empty region: %v", err)
	}
	if prices.invocations != 1 {
		t.Fatalf("aggregation not reached, invocations = %d", prices.invocations)
	}
	if len(prices.gotOrigins) != 0 {
		t.Errorf("origin codes = %v, want an empty set", prices.gotOrigins)
	}
}

func TestDailyRatesUnknownIdentifiers(t *testing.T) {
	tests := []struct {
		name        string
		origin      string
		destination string
		wantMessage string
	}{
		{
			name:        "unknown origin port code",
			origin:      "XXXXX",
			destination: "NLRTM",
			wantMessage: "Unknown origin port code: XXXXX",
		},
		{
			name:        "unknown destination port code",
			origin:      "CNSGH",
			destination: "ZZZZZ",
			wantMessage: "Unknown destination port code: ZZZZZ",
		},
		{
			name:        "unknown origin region slug",
			origin:      "atlantis",
			destination: "NLRTM",
			wantMessage: "Unknown origin region slug: atlantis",
		},
		{
			name:        "unknown destination region slug",
			origin:      "china_main",
			destination: "mordor_west",
			wantMessage: "Unknown destination region slug: mordor_west",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prices := &fakePrices{}
			svc := newTestService(newTestGeo(), prices)

			_, err := svc.DailyRates(context.Background(), testQuery(tt.origin, tt.destination))
			if err == nil {
				t.Fatal("expected an error, got nil")
			}

			var httpErr *errs.HTTPError
			if !errors.As(err, &httpErr) {
				t.Fatalf("expected *errs.HTTPError, got %T", err)
			}
			if httpErr.Status != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", httpErr.Status, http.StatusBadRequest)
			}
			if httpErr.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", httpErr.Message, tt.wantMessage)
			}
			if prices.invocations != 0 {
				t.Errorf("aggregation ran despite a resolution failure")
			}
		})
	}
}

func TestDailyRatesCyclicHierarchy(t *testing.T) {
	geo := newTestGeo()
	geo.expandErr = repository.ErrCycleDetected
	prices := &fakePrices{}
	svc := newTestService(geo, prices)

	_, err := svc.DailyRates(context.Background(), testQuery("china_main", "NLRTM"))
	if err == nil {
		t.Fatal("expected an error, got nil")
	}

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T", err)
	}
	if httpErr.Status != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", httpErr.Status, http.StatusInternalServerError)
	}
	if httpErr.Message == repository.ErrCycleDetected.Error() {
		t.Error("internal error detail leaked into the client message")
	}
}

func TestDailyRatesAggregationErrorPassesThrough(t *testing.T) {
	wantErr := errors.New("connection reset")
	prices := &fakePrices{err: wantErr}
	svc := newTestService(newTestGeo(), prices)

	_, err := svc.DailyRates(context.Background(), testQuery("CNSGH", "NLRTM"))
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected the repository error to pass through, got %v", err)
	}
}
