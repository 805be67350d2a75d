package templeRepo

import (
	"context"
	"fmt"
	"time"

	"devalaya/config"
	"devalaya/database"
	"devalaya/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoTempleRepo implements TempleRepository using MongoDB.
type MongoTempleRepo struct {
	templeColl    *mongo.Collection
	serviceColl   *mongo.Collection
	variationColl *mongo.Collection
}

// NewMongoTempleRepo constructs a new instance of MongoTempleRepo.
func NewMongoTempleRepo() TempleRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoTempleRepo{
		templeColl:    db.Collection("temples"),
		serviceColl:   db.Collection("temple_services"),
		variationColl: db.Collection("service_variations"),
	}
}

// GetAllTemples retrieves every temple in the catalogue.
func (repo *MongoTempleRepo) GetAllTemples() ([]models.Temple, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.templeColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error fetching temples: %w", err)
	}
	defer cursor.Close(ctx)

	var temples []models.Temple
	if err := cursor.All(ctx, &temples); err != nil {
		return nil, fmt.Errorf("error decoding temples: %w", err)
	}
	return temples, nil
}

// GetTempleByID retrieves a temple document by ID.
func (repo *MongoTempleRepo) GetTempleByID(templeID string) (*models.Temple, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var temple models.Temple
	if err := repo.templeColl.FindOne(ctx, bson.M{"id": templeID}).Decode(&temple); err != nil {
		return nil, fmt.Errorf("temple %s not found: %w", templeID, err)
	}
	return &temple, nil
}

// GetServicesByTemple retrieves the active services of a temple.
func (repo *MongoTempleRepo) GetServicesByTemple(templeID string) ([]models.TempleService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"temple_id": templeID, "active": true}
	cursor, err := repo.serviceColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching services for temple %s: %w", templeID, err)
	}
	defer cursor.Close(ctx)

	var services []models.TempleService
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("error decoding services: %w", err)
	}
	return services, nil
}

// GetServiceByID retrieves a service document by ID.
func (repo *MongoTempleRepo) GetServiceByID(serviceID string) (*models.TempleService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var service models.TempleService
	if err := repo.serviceColl.FindOne(ctx, bson.M{"id": serviceID}).Decode(&service); err != nil {
		return nil, fmt.Errorf("service %s not found: %w", serviceID, err)
	}
	return &service, nil
}

// GetVariationsByService retrieves the priced variations of a service.
func (repo *MongoTempleRepo) GetVariationsByService(serviceID string) ([]models.ServiceVariation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.variationColl.Find(ctx, bson.M{"service_id": serviceID})
	if err != nil {
		return nil, fmt.Errorf("error fetching variations for service %s: %w", serviceID, err)
	}
	defer cursor.Close(ctx)

	var variations []models.ServiceVariation
	if err := cursor.All(ctx, &variations); err != nil {
		return nil, fmt.Errorf("error decoding variations: %w", err)
	}
	return variations, nil
}

// GetVariationByID retrieves a variation document by ID.
func (repo *MongoTempleRepo) GetVariationByID(variationID string) (*models.ServiceVariation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var variation models.ServiceVariation
	if err := repo.variationColl.FindOne(ctx, bson.M{"id": variationID}).Decode(&variation); err != nil {
		return nil, fmt.Errorf("variation %s not found: %w", variationID, err)
	}
	return &variation, nil
}
