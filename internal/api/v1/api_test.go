// internal/api/v1/api_test.go
package v1

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/marquee/internal/api/v1/mocks"
	"github.com/vmunix/marquee/internal/charts"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testEnv struct {
	catalog *mocks.MockCatalog
	srv     *Server
	handler http.Handler
}

func newTestEnv(t *testing.T, cfg Config) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	catalog := mocks.NewMockCatalog(ctrl)
	cfg.Logger = testLogger()
	srv, err := New(ServerDeps{Catalog: catalog, Registry: charts.Default()}, cfg)
	require.NoError(t, err)
	t.Cleanup(srv.Close)
	return &testEnv{catalog: catalog, srv: srv, handler: srv.Handler()}
}

func (e *testEnv) do(t *testing.T, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

type stubCache struct{ name string }

func (c stubCache) Name() string { return c.name }

func TestNew_RequiresDependencies(t *testing.T) {
	_, err := New(ServerDeps{Registry: charts.Default()}, Config{})
	assert.ErrorIs(t, err, ErrMissingDependency)

	ctrl := gomock.NewController(t)
	_, err = New(ServerDeps{Catalog: mocks.NewMockCatalog(ctrl)}, Config{})
	assert.ErrorIs(t, err, ErrMissingDependency)
}

func TestNew_Defaults(t *testing.T) {
	env := newTestEnv(t, Config{})
	assert.Equal(t, "dev", env.srv.cfg.Version)
	assert.Equal(t, time.Hour, env.srv.cfg.CacheMaxAge)
	assert.Nil(t, env.srv.limiter)
}

func TestQueryPage(t *testing.T) {
	tests := []struct {
		query   string
		want    int
		wantErr bool
	}{
		{"", 1, false},
		{"page=3", 3, false},
		{"page=500", 500, false},
		{"page=0", 0, true},
		{"page=-1", 0, true},
		{"page=501", 0, true},
		{"page=abc", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/x?"+tt.query, nil)
			got, err := queryPage(r)
			if tt.wantErr {
				assert.ErrorIs(t, err, errBadPage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequestID(t *testing.T) {
	env := newTestEnv(t, Config{})
	env.catalog.EXPECT().TrailerBreakers().Return(nil).Times(2)

	w := env.do(t, http.MethodGet, "/api/v1/status")
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	env.handler.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRecoverPanics(t *testing.T) {
	h := requestID(recoverPanics(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}), testLogger()))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decode[errorResponse](t, w)
	assert.Equal(t, "internal server error", resp.Error)
	assert.Equal(t, "INTERNAL", resp.Code)
}

func TestCORS_Preflight(t *testing.T) {
	env := newTestEnv(t, Config{})

	w := env.do(t, http.MethodOptions, "/api/v1/charts?slug=x")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestStatusRecorder_FirstStatusWins(t *testing.T) {
	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}
	rec.WriteHeader(http.StatusNotFound)
	rec.WriteHeader(http.StatusInternalServerError)
	assert.Equal(t, http.StatusNotFound, rec.status)
}

func TestMethodNotAllowed(t *testing.T) {
	env := newTestEnv(t, Config{})
	w := env.do(t, http.MethodGet, "/api/v1/trailers/reset")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
