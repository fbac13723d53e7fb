package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.ObserveBuildDuration(12 * time.Millisecond)
	pr.IncBuildOutcome(OutcomeSuccess)
	pr.IncBuildOutcome(OutcomeSuccess)
	pr.IncBuildOutcome(OutcomeFailed)
	pr.SetMappingSize(2, 3, 7)
	pr.IncWatchEvent("CREATE")

	require.Equal(t, 2.0, testutil.ToFloat64(pr.buildOutcome.WithLabelValues("success")))
	require.Equal(t, 1.0, testutil.ToFloat64(pr.buildOutcome.WithLabelValues("failed")))
	require.Equal(t, 2.0, testutil.ToFloat64(pr.mappingKeys))
	require.Equal(t, 7.0, testutil.ToFloat64(pr.mappingNodes.WithLabelValues("leaf")))
	require.Equal(t, 1.0, testutil.ToFloat64(pr.watchEvents.WithLabelValues("CREATE")))

	mfs, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, mfs, 5)
}

func TestPrometheusRecorder_NilReceiver(t *testing.T) {
	var pr *PrometheusRecorder
	require.NotPanics(t, func() {
		pr.ObserveBuildDuration(time.Second)
		pr.IncBuildOutcome(OutcomeFailed)
		pr.SetMappingSize(1, 1, 1)
		pr.IncWatchEvent("REMOVE")
	})
}

func TestHTTPHandler(t *testing.T) {
	reg := prom.NewRegistry()
	NewPrometheusRecorder(reg).IncBuildOutcome(OutcomeUnchanged)

	rec := httptest.NewRecorder()
	HTTPHandler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), `docsidebar_build_outcomes_total{outcome="unchanged"} 1`))
}

func TestNoopRecorderSatisfiesInterface(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveBuildDuration(time.Second)
	r.SetMappingSize(0, 0, 0)
}
