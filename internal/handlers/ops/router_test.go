package ops

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, h http.Handler, path string) (int, string) {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return rec.Code, string(body)
}

func TestNewRouterValidatesConfig(t *testing.T) {
	_, err := NewRouter(nil)
	assert.Error(t, err)

	_, err = NewRouter(&Config{})
	assert.Error(t, err)
}

func TestRouter(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("drinktracker_tracker_friends_tracked 1\n"))
	})

	var readyErr error
	router, err := NewRouter(&Config{
		Metrics: metrics,
		Ready:   func() error { return readyErr },
	})
	require.NoError(t, err)

	code, body := get(t, router, "/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body)

	code, body = get(t, router, "/metrics")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "friends_tracked 1")

	code, _ = get(t, router, "/readyz")
	assert.Equal(t, http.StatusOK, code)

	readyErr = errors.New("redis: connection refused")
	code, body = get(t, router, "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Contains(t, body, "connection refused")

	code, _ = get(t, router, "/nope")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestReadyWithoutCheck(t *testing.T) {
	router, err := NewRouter(&Config{Metrics: http.NotFoundHandler()})
	require.NoError(t, err)

	code, body := get(t, router, "/readyz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ready", body)
}
