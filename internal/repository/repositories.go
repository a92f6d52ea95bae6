package repository

import (
	"github.com/freightwise/rates-api/internal/server"
)

// Repositories is the container for all repository instances, constructed
// once and handed to the service layer.
type Repositories struct {
	Geo    *Geo
	Prices *Prices
}

// NewRepositories constructs the repository container from the application's
// shared database pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Geo:    NewGeo(s.DB.Pool, s.Config.Database.QueryTimeout),
		Prices: NewPrices(s.DB.Pool, s.Config.Database.QueryTimeout),
	}
}
