package store

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"backend/internal/models"
)

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func testProduct(slug string, featured bool) models.Product {
	return models.Product{
		Title:    "Chair",
		Slug:     slug,
		Price:    floatPtr(25),
		Category: "furniture",
		Images:   []string{},
		InStock:  boolPtr(true),
		Featured: boolPtr(featured),
	}
}

func TestMemoryInsertAndQuery(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	id, err := m.Insert(ctx, models.ProductCollection, testProduct("chair-1", false))
	if err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	if id == "" {
		t.Fatal("expected a generated identifier")
	}

	docs, err := m.Query(ctx, models.ProductCollection, bson.M{}, 0)
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	if _, ok := docs[0]["_id"]; ok {
		t.Fatal("expected _id to be stripped from query results")
	}
	if docs[0]["slug"] != "chair-1" {
		t.Fatalf("expected slug chair-1, got %v", docs[0]["slug"])
	}
}

func TestMemoryQueryEqualityFilter(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	for _, p := range []models.Product{testProduct("a", true), testProduct("b", false), testProduct("c", true)} {
		if _, err := m.Insert(ctx, models.ProductCollection, p); err != nil {
			t.Fatalf("Insert returned error: %v", err)
		}
	}

	featured, err := m.Query(ctx, models.ProductCollection, bson.M{"featured": true}, 0)
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if len(featured) != 2 {
		t.Fatalf("expected 2 featured documents, got %d", len(featured))
	}

	bySlug, err := m.Query(ctx, models.ProductCollection, bson.M{"slug": "b", "featured": false}, 0)
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if len(bySlug) != 1 {
		t.Fatalf("expected 1 document for AND filter, got %d", len(bySlug))
	}
}

func TestMemoryQueryLimit(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	for _, slug := range []string{"a", "b", "c"} {
		if _, err := m.Insert(ctx, models.ProductCollection, testProduct(slug, false)); err != nil {
			t.Fatalf("Insert returned error: %v", err)
		}
	}

	docs, err := m.Query(ctx, models.ProductCollection, bson.M{}, 1)
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected limit 1 to return 1 document, got %d", len(docs))
	}
}

func TestMemoryQueryDeepCopies(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if _, err := m.Insert(ctx, models.ProductCollection, testProduct("chair-1", false)); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}

	docs, _ := m.Query(ctx, models.ProductCollection, bson.M{}, 0)
	docs[0]["slug"] = "mutated"

	again, _ := m.Query(ctx, models.ProductCollection, bson.M{"slug": "chair-1"}, 0)
	if len(again) != 1 {
		t.Fatal("expected stored document to be unaffected by caller mutation")
	}
}

func TestMemoryCollections(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if _, err := m.Insert(ctx, models.OrderCollection, bson.M{"subtotal": 1.0}); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	if _, err := m.Insert(ctx, models.ContactMessageCollection, bson.M{"name": "Ada"}); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}

	names, err := m.Collections(ctx)
	if err != nil {
		t.Fatalf("Collections returned error: %v", err)
	}
	if len(names) != 2 || names[0] != models.ContactMessageCollection || names[1] != models.OrderCollection {
		t.Fatalf("expected sorted collection names, got %v", names)
	}
}

func TestDecodeMapsDocOntoEntity(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if _, err := m.Insert(ctx, models.ProductCollection, testProduct("chair-1", true)); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}

	docs, _ := m.Query(ctx, models.ProductCollection, bson.M{}, 0)

	var product models.Product
	if err := Decode(docs[0], &product); err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if product.Slug != "chair-1" || product.Price == nil || *product.Price != 25 {
		t.Fatalf("unexpected decoded product: %+v", product)
	}
	if product.Featured == nil || !*product.Featured {
		t.Fatal("expected featured true after decode")
	}
}

func TestMongoUnavailableWithoutDatabase(t *testing.T) {
	m := NewMongo(nil)
	ctx := context.Background()

	if _, err := m.Insert(ctx, models.ProductCollection, bson.M{}); err != ErrUnavailable {
		t.Fatalf("expected ErrUnavailable from Insert, got %v", err)
	}
	if _, err := m.Query(ctx, models.ProductCollection, bson.M{}, 0); err != ErrUnavailable {
		t.Fatalf("expected ErrUnavailable from Query, got %v", err)
	}
	if _, err := m.Collections(ctx); err != ErrUnavailable {
		t.Fatalf("expected ErrUnavailable from Collections, got %v", err)
	}
	if err := m.Ping(ctx); err != ErrUnavailable {
		t.Fatalf("expected ErrUnavailable from Ping, got %v", err)
	}
}
