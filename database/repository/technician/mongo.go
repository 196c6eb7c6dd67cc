package technicianRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"boilertech/database"
	"boilertech/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoTechnicianRepo implements TechnicianRepository using MongoDB.
type MongoTechnicianRepo struct {
	coll *mongo.Collection
}

// NewMongoTechnicianRepo creates a TechnicianRepository backed by the
// "technicians" collection.
func NewMongoTechnicianRepo() TechnicianRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("technicians")
	return &MongoTechnicianRepo{coll: coll}
}

func (r *MongoTechnicianRepo) GetAll(ctx context.Context) ([]models.Technician, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch technicians: %w", err)
	}
	defer cursor.Close(ctx)

	var technicians []models.Technician
	if err := cursor.All(ctx, &technicians); err != nil {
		return nil, fmt.Errorf("failed to decode technicians: %w", err)
	}
	return technicians, nil
}

func (r *MongoTechnicianRepo) GetByID(ctx context.Context, id string) (*models.Technician, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var technician models.Technician
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&technician); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch technician with id %s: %w", id, err)
	}
	return &technician, nil
}
