package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "items.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func doRequest(t *testing.T, s *Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	s := NewServer(0, "does-not-matter.json")

	rec := doRequest(t, s, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestVersion(t *testing.T) {
	s := NewServer(0, "does-not-matter.json")

	rec := doRequest(t, s, http.MethodGet, "/version")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version": "1.0"}`, rec.Body.String())
}

func TestCatalogEndpoint(t *testing.T) {
	content := `{"version":"1.0","categories":{}}`
	path := writeCatalog(t, t.TempDir(), content)
	s := NewServer(0, path)

	rec := doRequest(t, s, http.MethodGet, "/api/v1/catalog")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, content, rec.Body.String())
}

func TestCatalogMissingFile(t *testing.T) {
	s := NewServer(0, filepath.Join(t.TempDir(), "absent.json"))

	rec := doRequest(t, s, http.MethodGet, "/api/v1/catalog")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCatalogCacheServesFreshContentAfterRewrite(t *testing.T) {
	dir := t.TempDir()
	path := writeCatalog(t, dir, `{"gen":1}`)
	s := NewServer(0, path)

	rec := doRequest(t, s, http.MethodGet, "/api/v1/catalog")
	assert.Equal(t, `{"gen":1}`, rec.Body.String())

	// Rewrite the file with a distinct mtime so the cache entry is stale.
	require.NoError(t, os.WriteFile(path, []byte(`{"gen":2}`), 0o644))
	newTime := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, newTime, newTime))

	rec = doRequest(t, s, http.MethodGet, "/api/v1/catalog")
	assert.Equal(t, `{"gen":2}`, rec.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	s := NewServer(0, "does-not-matter.json")

	rec := doRequest(t, s, http.MethodGet, "/api/v1/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s := NewServer(0, "does-not-matter.json")

	rec := doRequest(t, s, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}

func TestCatalogCacheLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeCatalog(t, dir, "cached")
	cache := newCatalogCache(2, time.Minute)

	data, err := cache.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "cached", string(data))

	// Second load hits the cache.
	data, err = cache.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "cached", string(data))

	_, err = cache.Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
