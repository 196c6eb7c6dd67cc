package recordsRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"boilertech/database"
	"boilertech/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRecordRepo implements RecordRepository using MongoDB.
type MongoRecordRepo struct {
	coll *mongo.Collection
}

// NewMongoRecordRepo creates a RecordRepository backed by the
// "maintenance_records" collection.
func NewMongoRecordRepo() RecordRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("maintenance_records")
	return &MongoRecordRepo{coll: coll}
}

func (r *MongoRecordRepo) GetByCustomer(ctx context.Context, customerID string) (*models.MaintenanceRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var record models.MaintenanceRecord
	if err := r.coll.FindOne(ctx, bson.M{"customer_id": customerID}).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch maintenance record for customer %s: %w", customerID, err)
	}
	return &record, nil
}

func (r *MongoRecordRepo) Upsert(ctx context.Context, record *models.MaintenanceRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"customer_id": record.CustomerID}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, filter, record, opts); err != nil {
		return fmt.Errorf("failed to upsert maintenance record for customer %s: %w", record.CustomerID, err)
	}
	return nil
}
