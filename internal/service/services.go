package service

import (
	"github.com/freightwise/rates-api/internal/repository"
	"github.com/freightwise/rates-api/internal/server"
)

// Services is the container for all service instances.
type Services struct {
	Rates *RatesService
}

// NewServices constructs the service container from the application
// container and the repositories.
func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Rates: NewRatesService(s.Logger, repos.Geo, repos.Prices),
	}
}
