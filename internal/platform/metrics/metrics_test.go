package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)

	c.RecordQuote(7236840)
	c.RecordAssignment(OutcomeAssigned)
	c.RecordAssignment(OutcomeCapacityExceeded)
	c.RecordAssignment(OutcomeCapacityExceeded)
	c.SetTrucks(3)
	c.ObserveHTTP("/quotes", http.StatusOK, 12*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.Quotes))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.Assignments.WithLabelValues(OutcomeCapacityExceeded)))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.Trucks))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.HTTPRequests.WithLabelValues("/quotes", "200")))
}

func TestCollectorDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewCollector(reg)
	require.NoError(t, err)

	_, err = NewCollector(reg)
	assert.Error(t, err)
}

func TestCollectorHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)
	c.RecordAssignment(OutcomeAssigned)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(string(body), `routesheet_assignments_total{outcome="assigned"} 1`))
}

func TestNilCollectorIsNoop(t *testing.T) {
	var c *Collector
	c.RecordQuote(1)
	c.RecordAssignment(OutcomeError)
	c.SetTrucks(1)
	c.ObserveHTTP("/health", http.StatusOK, time.Millisecond)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
