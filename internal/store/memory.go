package store

import (
	"context"
	"reflect"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Memory keeps collections in memory. Data is lost on restart.
// Safe for concurrent use.
type Memory struct {
	mu          sync.RWMutex
	collections map[string][]bson.M
}

func NewMemory() *Memory {
	return &Memory{collections: make(map[string][]bson.M)}
}

// copyDoc deep-copies a document by round-tripping through bson, so the
// stored values carry the same types a real database round-trip would.
func copyDoc(doc any) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var out bson.M
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *Memory) Insert(_ context.Context, collection string, doc any) (string, error) {
	stored, err := copyDoc(doc)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	stored["_id"] = id

	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[collection] = append(m.collections[collection], stored)
	return id, nil
}

func (m *Memory) Query(_ context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	docs := make([]bson.M, 0)
	for _, doc := range m.collections[collection] {
		if !matches(doc, filter) {
			continue
		}
		out, err := copyDoc(doc)
		if err != nil {
			return nil, err
		}
		delete(out, "_id")
		docs = append(docs, out)
		if limit > 0 && int64(len(docs)) == limit {
			break
		}
	}
	return docs, nil
}

func (m *Memory) Collections(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *Memory) Ping(_ context.Context) error {
	return nil
}

func matches(doc, filter bson.M) bool {
	for key, want := range filter {
		got, ok := doc[key]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}
