// Package metrics records per-run generation metrics.
//
// Components receive a Recorder; NoopRecorder is the default so callers never
// nil-check. PrometheusRecorder registers gauges on its own registry and can
// flush them to a node_exporter textfile-collector file, which suits a batch
// job that exits before any scrape could happen:
//
//	reg := prom.NewRegistry()
//	rec := metrics.NewPrometheusRecorder(reg)
//	// ... run ...
//	_ = rec.WriteTextfile("/var/lib/node_exporter/sitemapgen.prom")
package metrics
