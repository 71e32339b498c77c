package metrics

import (
	"os"
	"path/filepath"
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

	pr.ObserveGenerationDuration(150 * time.Millisecond)
	pr.SetPageCounts(7, 3)
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	pr.SetOutcome(OutcomeSuccess, at)

	require.InDelta(t, 0.15, testutil.ToFloat64(pr.duration), 1e-9)
	require.Equal(t, 7.0, testutil.ToFloat64(pr.pages))
	require.Equal(t, 3.0, testutil.ToFloat64(pr.posts))
	require.Equal(t, 1.0, testutil.ToFloat64(pr.outcome.WithLabelValues("success")))
	require.Equal(t, 0.0, testutil.ToFloat64(pr.outcome.WithLabelValues("failed")))
	require.Equal(t, float64(at.Unix()), testutil.ToFloat64(pr.lastSuccess))
}

func TestPrometheusRecorder_FailureKeepsLastSuccess(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	first := time.Unix(1000, 0)
	pr.SetOutcome(OutcomeSuccess, first)
	pr.SetOutcome(OutcomeFailed, time.Unix(2000, 0))

	require.Equal(t, 1000.0, testutil.ToFloat64(pr.lastSuccess))
	require.Equal(t, 1.0, testutil.ToFloat64(pr.outcome.WithLabelValues("failed")))
}

func TestPrometheusRecorder_WriteTextfile(t *testing.T) {
	pr := NewPrometheusRecorder(prom.NewRegistry())
	pr.SetPageCounts(5, 1)

	path := filepath.Join(t.TempDir(), "sitemapgen.prom")
	require.NoError(t, pr.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(data), "sitemapgen_pages_total 5"), string(data))
	require.True(t, strings.Contains(string(data), "sitemapgen_posts_total 1"), string(data))
}

func TestNilPrometheusRecorderIsSafe(t *testing.T) {
	var pr *PrometheusRecorder
	pr.ObserveGenerationDuration(time.Second)
	pr.SetPageCounts(1, 1)
	pr.SetOutcome(OutcomeSuccess, time.Now())
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveGenerationDuration(time.Second)
	r.SetPageCounts(1, 0)
	r.SetOutcome(OutcomeFailed, time.Now())
}
