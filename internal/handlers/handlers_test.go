package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"backend/internal/config"
	"backend/internal/store"
)

func newTestRouter(s store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, s, config.Config{DatabaseURLSet: true, DatabaseNameSet: true})
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var v map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("response is not a JSON object: %v (%s)", err, w.Body.String())
	}
	return v
}

func decodeBodyArray(t *testing.T, w *httptest.ResponseRecorder) []any {
	t.Helper()
	var v []any
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("response is not a JSON array: %v (%s)", err, w.Body.String())
	}
	return v
}

func TestHome(t *testing.T) {
	r := newTestRouter(store.NewMemory())

	w := doRequest(t, r, "GET", "/", nil)
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if decodeBody(t, w)["message"] != "Upcycled Shop Backend Running" {
		t.Fatalf("unexpected home message: %s", w.Body.String())
	}
}
