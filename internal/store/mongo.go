package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo implements Store on top of a *mongo.Database. A nil database is
// allowed: the service keeps serving in degraded mode and every operation
// returns ErrUnavailable.
type Mongo struct {
	db *mongo.Database
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

func (m *Mongo) Insert(ctx context.Context, collection string, doc any) (string, error) {
	if m.db == nil {
		return "", ErrUnavailable
	}

	res, err := m.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("store: unexpected inserted id type")
	}
	return id.Hex(), nil
}

func (m *Mongo) Query(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if m.db == nil {
		return nil, ErrUnavailable
	}
	if filter == nil {
		filter = bson.M{}
	}

	findOptions := options.Find()
	if limit > 0 {
		findOptions.SetLimit(limit)
	}

	cursor, err := m.db.Collection(collection).Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	for _, doc := range docs {
		delete(doc, "_id")
	}
	return docs, nil
}

func (m *Mongo) Collections(ctx context.Context) ([]string, error) {
	if m.db == nil {
		return nil, ErrUnavailable
	}
	return m.db.ListCollectionNames(ctx, bson.M{})
}

func (m *Mongo) Ping(ctx context.Context) error {
	if m.db == nil {
		return ErrUnavailable
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return m.db.Client().Ping(pingCtx, readpref.Primary())
}
