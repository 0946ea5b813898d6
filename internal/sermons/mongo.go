package sermons

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gracechapel/gracechapel/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository implements Repository on a Mongo collection, one document
// per sermon. Listing sorts by createdAt descending, which reproduces the KV
// store's prepend order.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	idx := mongo.IndexModel{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)}
	col.Indexes().CreateOne(context.Background(), idx)
	return &MongoRepository{col: col}
}

func (r *MongoRepository) List(ctx context.Context) ([]models.Sermon, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []models.Sermon{}
	for cur.Next(ctx) {
		var s models.Sermon
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, cur.Err()
}

func (r *MongoRepository) Get(ctx context.Context, id string) (*models.Sermon, error) {
	var s models.Sermon
	if err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&s); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *MongoRepository) Add(ctx context.Context, s models.Sermon) (models.Sermon, error) {
	s.ID = uuid.NewString()
	s.CreatedAt = time.Now().UTC()
	if _, err := r.col.InsertOne(ctx, s); err != nil {
		return models.Sermon{}, err
	}
	return s, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	// zero deletions is fine: absent ids are a no-op
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
	for i, s := range seed {
		// descending timestamps keep the seed's listing order under the
		// createdAt sort
		s.CreatedAt = base.Add(-time.Duration(i) * time.Second)
		docs = append(docs, s)
	}
	_, err = r.col.InsertMany(ctx, docs)
	return err
}
