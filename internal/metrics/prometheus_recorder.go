package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "sitemapgen"

// PrometheusRecorder implements Recorder using Prometheus gauges.
type PrometheusRecorder struct {
	reg         *prom.Registry
	duration    prom.Gauge
	pages       prom.Gauge
	posts       prom.Gauge
	outcome     *prom.GaugeVec
	lastSuccess prom.Gauge
}

// NewPrometheusRecorder constructs and registers the run metrics on reg.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		reg: reg,
		duration: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Wall time of the last sitemap generation run",
		}),
		pages: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "pages_total",
			Help:      "Number of <url> entries in the last generated sitemap",
		}),
		posts: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "posts_total",
			Help:      "Number of post files found by the last run",
		}),
		outcome: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_outcome",
			Help:      "1 for the outcome of the last run, 0 otherwise",
		}, []string{"outcome"}),
		lastSuccess: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful run",
		}),
	}
	reg.MustRegister(pr.duration, pr.pages, pr.posts, pr.outcome, pr.lastSuccess)
	return pr
}

func (p *PrometheusRecorder) ObserveGenerationDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.duration.Set(d.Seconds())
}

func (p *PrometheusRecorder) SetPageCounts(total, posts int) {
	if p == nil {
		return
	}
	p.pages.Set(float64(total))
	p.posts.Set(float64(posts))
}

func (p *PrometheusRecorder) SetOutcome(outcome OutcomeLabel, at time.Time) {
	if p == nil {
		return
	}
	for _, o := range []OutcomeLabel{OutcomeSuccess, OutcomeFailed} {
		v := 0.0
		if o == outcome {
			v = 1
		}
		p.outcome.WithLabelValues(string(o)).Set(v)
	}
	if outcome == OutcomeSuccess {
		p.lastSuccess.Set(float64(at.Unix()))
	}
}

// WriteTextfile writes every registered metric to path in the text exposition
// format. The file is replaced atomically.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	return prom.WriteToTextfile(path, p.reg)
}
