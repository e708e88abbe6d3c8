package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, reg *prometheus.Registry, name string, label string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if label == "" {
				return m.GetCounter().GetValue()
			}
			for _, lp := range m.GetLabel() {
				if lp.GetValue() == label {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func TestRecordQueryCountsByOutcome(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordQuery(OutcomeSuccess, 10*time.Millisecond)
	c.RecordQuery(OutcomeSuccess, 20*time.Millisecond)
	c.RecordQuery(OutcomeFailure, time.Second)

	assert.Equal(t, 2.0, counterValue(t, reg, "rickmorty_queries_total", OutcomeSuccess))
	assert.Equal(t, 1.0, counterValue(t, reg, "rickmorty_queries_total", OutcomeFailure))
}

func TestRecordCacheHit(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordCacheHit()

	assert.Equal(t, 1.0, counterValue(t, reg, "rickmorty_cache_hits_total", ""))
}

func TestHandlerServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordCacheHit()

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), "rickmorty_cache_hits_total 1")
}
