package metric

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	require.NotNil(t, r.Metrics())
	require.NotNil(t, r.PrometheusRegistry())
}

func TestRecordMatchCheck(t *testing.T) {
	r := NewRegistry()
	m := r.Metrics()

	m.RecordMatchCheck(true)
	m.RecordMatchCheck(true)
	m.RecordMatchCheck(false)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.MatchChecks.WithLabelValues("match")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.MatchChecks.WithLabelValues("miss")))
}

func TestRecordPermissionDecision(t *testing.T) {
	r := NewRegistry()
	m := r.Metrics()

	m.RecordPermissionDecision("publish", true)
	m.RecordPermissionDecision("publish", false)
	m.RecordPermissionDecision("subscribe", true)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.PermissionDecisions.WithLabelValues("publish", "allow")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.PermissionDecisions.WithLabelValues("publish", "deny")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.PermissionDecisions.WithLabelValues("subscribe", "allow")))
}

func TestRecordTranslationAndComposition(t *testing.T) {
	r := NewRegistry()
	m := r.Metrics()

	m.RecordTranslation("forward", "translated")
	m.RecordTranslation("forward", "pass_through")
	m.RecordComposition("sequence", nil)
	m.RecordComposition("transform", assert.AnError)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.Translations.WithLabelValues("forward", "translated")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Translations.WithLabelValues("forward", "pass_through")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Compositions.WithLabelValues("sequence", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Compositions.WithLabelValues("transform", "error")))
}

func TestRegisterCustomCollector(t *testing.T) {
	r := NewRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "semsubject",
		Name:      "custom_total",
		Help:      "Custom counter",
	})

	require.NoError(t, r.Register("custom", counter))
	assert.Error(t, r.Register("custom", counter), "duplicate name must be rejected")

	counter.Inc()
	assert.Equal(t, float64(1), testutil.ToFloat64(counter))

	assert.True(t, r.Unregister("custom"))
	assert.False(t, r.Unregister("custom"))
}

func TestHandler(t *testing.T) {
	r := NewRegistry()
	m := r.Metrics()

	m.RecordMatchCheck(true)
	m.RecordOperationDuration("translate", 5*time.Millisecond)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, 200, resp.StatusCode)

	count, err := testutil.GatherAndCount(r.PrometheusRegistry(),
		"semsubject_pattern_match_checks_total",
		"semsubject_engine_operation_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
