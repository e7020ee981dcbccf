package app

import (
	"context"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpac-commercial/course-design-assessment/internal/data/db"
	"github.com/mpac-commercial/course-design-assessment/internal/platform/logger"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.LogMode = "test"
	cfg.HTTP.Addr = "127.0.0.1:0"
	cfg.HTTP.ShutdownTimeout = 2 * time.Second
	cfg.DB.Driver = db.DriverSQLite
	cfg.DB.SQLitePath = fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	cfg.Metrics.Enabled = true
	cfg.Metrics.DBStatsInterval = 10 * time.Millisecond
	return cfg
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	a, err := NewWithConfig(context.Background(), testConfig(t), log)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	t.Cleanup(a.Close)
	return a
}

func TestNewWithConfigWiresRoutes(t *testing.T) {
	a := newTestApp(t)
	require.NotNil(t, a.Services.Records)
	require.NotNil(t, a.Metrics)

	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodPost, "/course/create", strings.NewReader(`{"course_name":"Wiring"}`)))
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"course_name":"Wiring"`)

	rec = httptest.NewRecorder()
	a.Router.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/metrics", nil))
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "records_aggregate_operations_total")
}

func TestRunStopsOnCancel(t *testing.T) {
	a := newTestApp(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}

func TestNewWithConfigRejectsBadDriver(t *testing.T) {
	cfg := testConfig(t)
	cfg.DB.Driver = "oracle"
	_, err := NewWithConfig(context.Background(), cfg, logger.Nop())
	require.Error(t, err)
}
