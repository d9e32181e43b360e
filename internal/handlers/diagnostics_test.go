package handlers

import (
	"testing"

	"backend/internal/store"
)

func TestDiagnosticsHealthy(t *testing.T) {
	m := store.NewMemory()
	r := newTestRouter(m)

	w := doRequest(t, r, "POST", "/api/contact", map[string]any{
		"name": "Ada", "email": "ada@example.com", "message": "hi",
	})
	if w.Code != 200 {
		t.Fatalf("contact create failed: %d", w.Code)
	}

	w = doRequest(t, r, "GET", "/test", nil)
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["backend"] != "✅ Running" {
		t.Fatalf("unexpected backend status: %v", body["backend"])
	}
	if body["database"] != "✅ Connected & Working" {
		t.Fatalf("unexpected database status: %v", body["database"])
	}
	if body["connection_status"] != "Connected" {
		t.Fatalf("unexpected connection_status: %v", body["connection_status"])
	}
	collections, ok := body["collections"].([]any)
	if !ok || len(collections) != 1 {
		t.Fatalf("expected 1 collection listed, got %v", body["collections"])
	}
}

func TestDiagnosticsDatabaseAbsent(t *testing.T) {
	r := newTestRouter(store.NewMongo(nil))

	w := doRequest(t, r, "GET", "/test", nil)
	if w.Code != 200 {
		t.Fatalf("diagnostics must always return 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["database"] != "❌ Not Available" {
		t.Fatalf("unexpected database status: %v", body["database"])
	}
	if body["connection_status"] != "Not Connected" {
		t.Fatalf("unexpected connection_status: %v", body["connection_status"])
	}
}
