package handler

import (
	"github.com/freightwise/rates-api/internal/server"
	"github.com/freightwise/rates-api/internal/service"
)

// Handlers groups all HTTP handlers so router setup receives one object.
type Handlers struct {
	Health *HealthHandler
	Rates  *RatesHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health: NewHealthHandler(s),
		Rates:  NewRatesHandler(s, services.Rates),
	}
}
