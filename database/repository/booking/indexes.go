// FILE: database/repository/booking/indexes.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the bookings collection.
func (repo *MongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on booking ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Availability resolution fetches all bookings per service
		{
			Keys:    bson.D{{Key: "service_id", Value: 1}},
			Options: options.Index().SetName("service_idx"),
		},
		{
			Keys:    bson.D{{Key: "service_data.service_id", Value: 1}},
			Options: options.Index().SetName("service_data_idx"),
		},
		// User booking history
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("user_created_idx"),
		},
		// Per-day cap enforcement
		{
			Keys: bson.D{
				{Key: "service_variation_data.variation_id", Value: 1},
				{Key: "booking_date", Value: 1},
				{Key: "status", Value: 1},
			},
			Options: options.Index().SetName("variation_date_status_idx"),
		},
	}

	_, err := repo.bookingColl.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
