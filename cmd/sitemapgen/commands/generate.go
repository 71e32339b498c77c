package commands

import (
	"context"
	"fmt"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/Uranus-Queen/fuwari/internal/generate"
	"github.com/Uranus-Queen/fuwari/internal/logfields"
	"github.com/Uranus-Queen/fuwari/internal/metrics"
	"github.com/Uranus-Queen/fuwari/internal/observability"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	PostsDir    string `name:"posts-dir" short:"p" help:"Directory containing .md/.mdx posts" env:"SITEMAPGEN_POSTS_DIR"`
	Output      string `short:"o" help:"Output directory for the sitemap files" env:"SITEMAPGEN_OUTPUT_DIR"`
	BaseURL     string `name:"base-url" help:"Absolute site origin, e.g. https://example.com" env:"SITEMAPGEN_BASE_URL"`
	MetricsFile string `name:"metrics-file" help:"Write run metrics in Prometheus text format to this file" env:"SITEMAPGEN_METRICS_FILE"`
}

func (g *GenerateCmd) Run(global *Global, root *CLI) error {
	cfg, err := LoadConfig(root.Config, Overrides{
		PostsDir:    g.PostsDir,
		OutputDir:   g.Output,
		BaseURL:     g.BaseURL,
		MetricsFile: g.MetricsFile,
	})
	if err != nil {
		return err
	}

	ctx := observability.WithRunID(context.Background(), observability.NewRunID())

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	var promRecorder *metrics.PrometheusRecorder
	if cfg.Metrics.Textfile != "" {
		promRecorder = metrics.NewPrometheusRecorder(prom.NewRegistry())
		recorder = promRecorder
	}

	gen, err := generate.New(cfg, generate.WithRecorder(recorder))
	if err != nil {
		return err
	}
	res, runErr := gen.Run(ctx)

	if promRecorder != nil {
		if err := promRecorder.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			logger(global).Warn("Failed to write metrics textfile", logfields.Path(cfg.Metrics.Textfile), logfields.Error(err))
		}
	}
	if runErr != nil {
		return runErr
	}

	out := stdout(global)
	_, _ = fmt.Fprintf(out, "Formatted sitemap generated successfully at %s with %d pages\n", res.SitemapPath, len(res.Pages))
	_, _ = fmt.Fprintf(out, "Formatted sitemap index generated successfully at %s\n", res.IndexPath)
	return nil
}
