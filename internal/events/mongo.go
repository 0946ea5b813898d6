package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gracechapel/gracechapel/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository implements Repository on a Mongo collection.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	idx := mongo.IndexModel{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)}
	col.Indexes().CreateOne(context.Background(), idx)
	return &MongoRepository{col: col}
}

func (r *MongoRepository) List(ctx context.Context) ([]models.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []models.Event{}
	for cur.Next(ctx) {
		var e models.Event
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, cur.Err()
}

func (r *MongoRepository) Add(ctx context.Context, e models.Event) (models.Event, error) {
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now().UTC()
	if _, err := r.col.InsertOne(ctx, e); err != nil {
		return models.Event{}, err
	}
	return e, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	return err
}

func (r *MongoRepository) EnsureSeed(ctx context.Context) error {
	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	seed := Seed()
	docs := make([]interface{}, 0, len(seed))
	base := time.Now().UTC()
	for i, e := range seed {
		e.CreatedAt = base.Add(-time.Duration(i) * time.Second)
		docs = append(docs, e)
	}
	_, err = r.col.InsertMany(ctx, docs)
	return err
}
