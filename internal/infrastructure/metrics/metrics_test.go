package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveLookup(t *testing.T) {
	m := New()

	m.ObserveLookup("spaces")
	m.ObserveLookup("spaces")
	m.ObserveLookup("")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.lookups.WithLabelValues("spaces")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.lookups.WithLabelValues("miss")))
}

func TestObserveRequest(t *testing.T) {
	m := New()
	m.ObserveRequest("/api/v1/meta", http.MethodGet, http.StatusOK, 3*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("/api/v1/meta", "GET", "200")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveLookup("spaces")
		m.ObserveRequest("/", "GET", 200, time.Second)
	})
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.ObserveLookup("stories")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `floorspace_object_lookups_total{type="stories"} 1`)
}
