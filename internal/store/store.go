// Package store is the persistence gateway: a thin interface over a document
// database addressed by collection name, supporting single-document inserts
// and equality-filter queries.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrUnavailable is returned by every operation when the backing database
// was never reached (connection absent at startup).
var ErrUnavailable = errors.New("store: database unavailable")

// Store is the interface handlers depend on. Implementations must strip the
// internal identifier field from queried documents; identifiers are a storage
// concern, not part of the entity shape.
type Store interface {
	// Insert stores one document in the named collection and returns the
	// generated identifier.
	Insert(ctx context.Context, collection string, doc any) (string, error)

	// Query returns documents whose fields equal the filter values (logical
	// AND). An empty filter matches everything. limit <= 0 means no limit.
	Query(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)

	// Collections lists the collection names that exist in the store.
	Collections(ctx context.Context) ([]string, error)

	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}

// Decode maps a queried document onto a typed entity via a bson round-trip,
// the same way cursor decoding works against the live database.
func Decode(doc bson.M, out any) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}
