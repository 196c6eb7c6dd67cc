package forecastRepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"boilertech/database"
	"boilertech/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoForecastRepo implements ForecastRepository using MongoDB.
type MongoForecastRepo struct {
	coll *mongo.Collection
}

// NewMongoForecastRepo creates a ForecastRepository backed by the "forecasts"
// collection.
func NewMongoForecastRepo() ForecastRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("forecasts")
	return &MongoForecastRepo{coll: coll}
}

func (r *MongoForecastRepo) GetByDateLocation(ctx context.Context, date, location string) (*models.Forecast, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var forecast models.Forecast
	filter := bson.M{"date": date, "location": strings.ToLower(location)}
	if err := r.coll.FindOne(ctx, filter).Decode(&forecast); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch forecast for %s at %s: %w", date, location, err)
	}
	return &forecast, nil
}

func (r *MongoForecastRepo) GetRange(ctx context.Context, start, end, location string) ([]models.Forecast, error) {
	filter := bson.M{
		"location": strings.ToLower(location),
		"date":     bson.M{"$gte": start, "$lte": end},
	}
	return r.find(ctx, filter)
}

func (r *MongoForecastRepo) GetByLocation(ctx context.Context, location string) ([]models.Forecast, error) {
	return r.find(ctx, bson.M{"location": strings.ToLower(location)})
}

func (r *MongoForecastRepo) find(ctx context.Context, filter bson.M) ([]models.Forecast, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecasts: %w", err)
	}
	defer cursor.Close(ctx)

	var forecasts []models.Forecast
	if err := cursor.All(ctx, &forecasts); err != nil {
		return nil, fmt.Errorf("failed to decode forecasts: %w", err)
	}
	return forecasts, nil
}
