package templeRepo

import "devalaya/models"

// TempleRepository defines read access to the temple catalogue.
type TempleRepository interface {
	GetAllTemples() ([]models.Temple, error)
	GetTempleByID(templeID string) (*models.Temple, error)
	GetServicesByTemple(templeID string) ([]models.TempleService, error)
	GetServiceByID(serviceID string) (*models.TempleService, error)
	GetVariationsByService(serviceID string) ([]models.ServiceVariation, error)
	GetVariationByID(variationID string) (*models.ServiceVariation, error)
}
