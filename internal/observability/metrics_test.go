package observability

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpac-commercial/course-design-assessment/internal/data/repos/testutil"
)

func TestInitDisabledReturnsNil(t *testing.T) {
	m := Init(nil, false)
	assert.Nil(t, m)

	// nil receivers are no-ops
	m.ObserveAPI("GET", "/course/all", "200", time.Millisecond)
	m.ApiInflightInc()
	m.ObserveAggregateOperation("Records.Catalog.CreateCourse", "success", time.Millisecond)
	m.IncAggregateConflict("Records.Catalog.CreateCourse")
	assert.NoError(t, m.WritePrometheus(&bytes.Buffer{}))

	rec := httptest.NewRecorder()
	m.WriteHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestObserveAPI(t *testing.T) {
	m := New()
	m.ObserveAPI("GET", "/course/:course_id", "200", 20*time.Millisecond)
	m.ObserveAPI("GET", "/course/:course_id", "200", 30*time.Millisecond)
	m.ObserveAPI("POST", "/course/create", "500", time.Millisecond)
	m.ObserveAPI("", "", "", 0)

	assert.Equal(t, 2.0, m.apiRequests.Value("GET", "/course/:course_id", "200"))
	assert.Equal(t, 1.0, m.apiRequests.Value("UNKNOWN", "unknown", "0"))
	assert.Equal(t, uint64(2), m.apiLatency.Count("GET", "/course/:course_id", "200"))
	assert.Equal(t, 4.0, m.apiReqTotal.Value())
	assert.Equal(t, 1.0, m.apiReqError.Value())

	m.ApiInflightInc()
	m.ApiInflightInc()
	m.ApiInflightDec()
	assert.Equal(t, 1.0, m.apiInflight.Value())
}

func TestObserveAggregateOperation(t *testing.T) {
	m := New()
	m.ObserveAggregateOperation("Records.Enrollment.Enroll", "success", time.Millisecond)
	m.ObserveAggregateOperation("Records.Enrollment.Enroll", "conflict", time.Millisecond)
	m.ObserveAggregateOperation("Records.Enrollment.Enroll", "internal", time.Millisecond)
	m.IncAggregateConflict("Records.Enrollment.Enroll")

	assert.Equal(t, 1.0, m.aggregateOps.Value("Records.Enrollment.Enroll", "success"))
	assert.Equal(t, 1.0, m.aggregateOps.Value("Records.Enrollment.Enroll", "conflict"))
	assert.Equal(t, 1.0, m.aggregateConflicts.Value("Records.Enrollment.Enroll"))
	assert.Equal(t, 1.0, m.aggregateFailures.Value())
}

func TestWriteHTTP(t *testing.T) {
	m := New()
	m.ObserveAPI("GET", "/healthcheck", "200", 3*time.Millisecond)
	m.IncAggregateConflict(`weird"op`)

	rec := httptest.NewRecorder()
	m.WriteHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; version=0.0.4", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "# TYPE records_api_requests_total counter")
	assert.Contains(t, body, `records_api_requests_total{method="GET",route="/healthcheck",status="200"} 1.000000`)
	assert.Contains(t, body, `records_api_request_duration_seconds_bucket{method="GET",route="/healthcheck",status="200",le="0.005"} 1`)
	assert.Contains(t, body, `records_api_request_duration_seconds_count{method="GET",route="/healthcheck",status="200"} 1`)
	assert.Contains(t, body, `records_aggregate_conflicts_total{operation="weird\"op"} 1.000000`)
	assert.Contains(t, body, "# TYPE records_db_pool_stats gauge")
}

func TestHistogramBuckets(t *testing.T) {
	h := NewHistogramVec("h", "help", []string{"k"}, []float64{1, 2})
	h.Observe(0.5, "a")
	h.Observe(1.5, "a")
	h.Observe(3, "a")

	var buf bytes.Buffer
	require.NoError(t, h.WritePrometheus(&buf))
	out := buf.String()
	assert.Contains(t, out, `h_bucket{k="a",le="1"} 1`)
	assert.Contains(t, out, `h_bucket{k="a",le="2"} 2`)
	assert.Contains(t, out, `h_bucket{k="a",le="+Inf"} 3`)
	assert.Contains(t, out, `h_count{k="a"} 3`)
}

func TestCounterVecOutputIsSorted(t *testing.T) {
	c := NewCounterVec("c", "help", []string{"k"})
	c.Inc("b")
	c.Inc("a")
	c.Add(2, "c")

	var buf bytes.Buffer
	require.NoError(t, c.WritePrometheus(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, `c{k="a"} 1.000000`, lines[2])
	assert.Equal(t, `c{k="b"} 1.000000`, lines[3])
	assert.Equal(t, `c{k="c"} 2.000000`, lines[4])
}

func TestLabelHelpers(t *testing.T) {
	assert.Equal(t, "", labelString(nil, []string{"x"}))
	assert.Equal(t, `{a="1",b="unknown"}`, labelString([]string{"a", "b"}, []string{"1"}))
	assert.Equal(t, `{le="5"}`, withLe("", "5"))
	assert.Equal(t, `{a="1",le="5"}`, withLe(`{a="1"}`, "5"))
	assert.Equal(t, `a\\b\"c\nd`, escapeLabel("a\\b\"c\nd"))
	assert.True(t, isServerErrorStatus("503"))
	assert.False(t, isServerErrorStatus("404"))
}

func TestCollectDBStats(t *testing.T) {
	m := New()
	db := testutil.DB(t)

	require.NoError(t, m.CollectDBStats(db))
	assert.Equal(t, 1.0, m.dbStats.Value("max_open_connections"))
}
