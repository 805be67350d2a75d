package temple

import (
	templeRepo "devalaya/database/repository/temple"
	"devalaya/models"
)

// TempleService exposes the read-only temple catalogue.
type TempleService interface {
	ListTemples() ([]models.Temple, error)
	GetTemple(templeID string) (*models.Temple, error)
	ListServices(templeID string) ([]models.TempleService, error)
	ListVariations(serviceID string) ([]models.ServiceVariation, error)
}

// DefaultTempleService is the production implementation.
type DefaultTempleService struct {
	Repo templeRepo.TempleRepository
}
