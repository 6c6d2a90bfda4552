package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	dmn "github.com/keymaze/keymaze-api/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ScoreRepo handles the persistence of finished-level score records.
type ScoreRepo struct {
	collection *mongo.Collection
}

// NewScoreRepo creates a new ScoreRepo with the given MongoDB client, database name, and collection name.
func NewScoreRepo(client *mongo.Client, dbName, collectionName string) *ScoreRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &ScoreRepo{
		collection: collection,
	}
}

// Save appends a finished level to the score history.
func (s *ScoreRepo) Save(record *dmn.ScoreRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if _, err := s.collection.InsertOne(ctx, record); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// ByPlayer retrieves a player's score history, most recent first, capped
// at limit records.
func (s *ScoreRepo) ByPlayer(playerID uuid.UUID, limit int) ([]dmn.ScoreRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"playerId": playerID}
	opts := options.Find().
		SetSort(bson.M{"recordedAt": -1}).
		SetLimit(int64(limit))

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var records []dmn.ScoreRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return records, nil
}
