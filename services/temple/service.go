package temple

import (
	"fmt"

	"devalaya/models"
)

// ListTemples returns the full temple catalogue.
func (s *DefaultTempleService) ListTemples() ([]models.Temple, error) {
	temples, err := s.Repo.GetAllTemples()
	if err != nil {
		return nil, fmt.Errorf("failed to list temples: %w", err)
	}
	return temples, nil
}

// GetTemple returns one temple by ID.
func (s *DefaultTempleService) GetTemple(templeID string) (*models.Temple, error) {
	return s.Repo.GetTempleByID(templeID)
}

// ListServices returns the active bookable services of a temple.
func (s *DefaultTempleService) ListServices(templeID string) ([]models.TempleService, error) {
	if _, err := s.Repo.GetTempleByID(templeID); err != nil {
		return nil, err
	}
	services, err := s.Repo.GetServicesByTemple(templeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

// ListVariations returns the priced variations of a service.
func (s *DefaultTempleService) ListVariations(serviceID string) ([]models.ServiceVariation, error) {
	if _, err := s.Repo.GetServiceByID(serviceID); err != nil {
		return nil, err
	}
	variations, err := s.Repo.GetVariationsByService(serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list variations: %w", err)
	}
	return variations, nil
}
