package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/expravatar/pkg/domain"
	"github.com/umputun/expravatar/pkg/expression"
	"github.com/umputun/expravatar/server/mocks"
)

func testConfig(listen string) *mocks.ConfigProviderMock {
	return &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return listen, 30 * time.Second
		},
	}
}

// testSettings makes a settings mock applying catalog edits the way the real manager does
func testSettings() *mocks.SettingsManagerMock {
	catalog := expression.DefaultCatalog()
	st := domain.DefaultSettings()
	m := &mocks.SettingsManagerMock{}
	m.SettingsFunc = func() domain.Settings { return st }
	m.CatalogFunc = func() *expression.Catalog { return catalog }
	m.UpdateSettingsFunc = func(s domain.Settings) domain.Settings {
		st = s.Normalize()
		return st
	}
	m.UpdateCatalogFunc = func(fn func(c *expression.Catalog) error) (*expression.Catalog, error) {
		updated := catalog.Clone()
		if err := fn(updated); err != nil {
			return nil, err
		}
		if err := updated.Validate(); err != nil {
			return nil, err
		}
		catalog = updated
		return updated, nil
	}
	return m
}

func TestServer_New(t *testing.T) {
	srv := New(testConfig(":8080"), testSettings(), &mocks.EventProcessorMock{}, "1.0.0", false)
	assert.NotNil(t, srv)
	assert.Equal(t, "1.0.0", srv.version)
	assert.False(t, srv.debug)
}

func TestServer_Run(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	srv := New(testConfig(fmt.Sprintf("127.0.0.1:%d", port)), testSettings(), &mocks.EventProcessorMock{}, "1.0.0", true)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	// wait for server to start
	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(body) == "pong"
	}, 2*time.Second, 20*time.Millisecond)

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/api/v1/status", port))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "expravatar", resp.Header.Get("App-Name"))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_statusHandler(t *testing.T) {
	srv := New(testConfig(":8080"), testSettings(), &mocks.EventProcessorMock{}, "1.2.3", false)

	req := httptest.NewRequest("GET", "/api/v1/status", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var status map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "1.2.3", status["version"])
	assert.Equal(t, true, status["enabled"])
	assert.InDelta(t, 5, status["categories"], 0.001)
	assert.NotEmpty(t, status["time"])
}

func TestRenderJSON(t *testing.T) {
	data := map[string]string{"message": "test", "status": "ok"}

	req := httptest.NewRequest("GET", "/test", http.NoBody)
	w := httptest.NewRecorder()
	renderJSON(w, req, http.StatusCreated, data)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var result map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, data, result)
}

func TestRenderError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		want string
	}{
		{name: "with error", err: errors.New("boom"), code: http.StatusBadRequest, want: "boom"},
		{name: "nil error", err: nil, code: http.StatusInternalServerError, want: "unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/test", http.NoBody)
			w := httptest.NewRecorder()
			renderError(w, req, tt.err, tt.code)

			assert.Equal(t, tt.code, w.Code)
			var result map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
			assert.Equal(t, tt.want, result["error"])
		})
	}
}
