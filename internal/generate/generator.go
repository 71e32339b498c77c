// Package generate runs one sitemap generation: scan posts, aggregate with the
// static routes, render both documents in memory, then write them.
package generate

import (
	"context"
	"time"

	"github.com/Uranus-Queen/fuwari/internal/config"
	derrors "github.com/Uranus-Queen/fuwari/internal/errors"
	"github.com/Uranus-Queen/fuwari/internal/logfields"
	"github.com/Uranus-Queen/fuwari/internal/metrics"
	"github.com/Uranus-Queen/fuwari/internal/observability"
	"github.com/Uranus-Queen/fuwari/internal/output"
	"github.com/Uranus-Queen/fuwari/internal/posts"
	"github.com/Uranus-Queen/fuwari/internal/sitemap"
)

// Clock returns the current instant; tests substitute a fixed one.
type Clock func() time.Time

// Result summarizes a completed run.
type Result struct {
	Pages       []sitemap.PageEntry
	PostCount   int
	SitemapPath string
	IndexPath   string
	GeneratedAt time.Time
	Duration    time.Duration
}

// Plan is the in-memory product of a run before anything is written.
type Plan struct {
	Pages     []sitemap.PageEntry
	PostCount int
	Sitemap   string
	Index     string
	Now       time.Time
}

// Generator produces the sitemap and sitemap index for one configuration.
type Generator struct {
	cfg      *config.Config
	scanner  *posts.Scanner
	clock    Clock
	recorder metrics.Recorder
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock overrides the time source used for static pages and the index.
func WithClock(c Clock) Option {
	return func(g *Generator) { g.clock = c }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(g *Generator) { g.recorder = r }
}

// New creates a generator for cfg. An invalid post change frequency is a
// validation error.
func New(cfg *config.Config, opts ...Option) (*Generator, error) {
	postOpts, err := PostOptions(cfg)
	if err != nil {
		return nil, err
	}
	g := &Generator{
		cfg:      cfg,
		scanner:  posts.NewScanner(postOpts),
		clock:    time.Now,
		recorder: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// PostOptions maps the posts configuration onto scanner options.
func PostOptions(cfg *config.Config) (posts.Options, error) {
	cf, err := sitemap.ParseChangeFrequency(cfg.Posts.ChangeFreq)
	if err != nil {
		return posts.Options{}, derrors.ValidationFailed("posts.changefreq", err.Error())
	}
	return posts.Options{
		Patterns:         cfg.Posts.Patterns,
		RoutePrefix:      cfg.Posts.RoutePrefix,
		ChangeFrequency:  cf,
		Priority:         cfg.Posts.Priority,
		NormalizeUnicode: cfg.Posts.NormalizeUnicode,
	}, nil
}

// StaticEntries builds the configured static routes, all stamped with now.
func StaticEntries(pages []config.StaticPage, now time.Time) ([]sitemap.PageEntry, error) {
	out := make([]sitemap.PageEntry, 0, len(pages))
	for _, p := range pages {
		cf, err := sitemap.ParseChangeFrequency(p.ChangeFreq)
		if err != nil {
			return nil, derrors.ValidationFailed("static_pages.changefreq", err.Error())
		}
		out = append(out, sitemap.PageEntry{
			Path:            p.Path,
			LastModified:    now,
			ChangeFrequency: cf,
			Priority:        p.Priority,
		})
	}
	return out, nil
}

// Prepare scans, aggregates and renders without touching the output directory.
func (g *Generator) Prepare(ctx context.Context) (*Plan, error) {
	now := g.clock()

	static, err := StaticEntries(g.cfg.StaticPages, now)
	if err != nil {
		return nil, err
	}

	scanCtx := observability.WithStage(ctx, "scan")
	pages := sitemap.Aggregate(static, g.scanner.Scan(scanCtx, g.cfg.Posts.Directory))
	postCount := len(pages) - len(static)
	observability.InfoContext(scanCtx, "Pages aggregated",
		logfields.Pages(len(pages)), logfields.Posts(postCount), logfields.Dir(g.cfg.Posts.Directory))

	sitemapXML, err := sitemap.RenderSitemap(pages, g.cfg.Site.BaseURL)
	if err != nil {
		return nil, derrors.RenderFailed(g.cfg.Output.SitemapFile, err)
	}

	indexXML, err := sitemap.RenderIndex([]sitemap.SitemapReference{
		{Filename: g.cfg.Output.SitemapFile, LastModified: now},
	}, g.cfg.Site.BaseURL)
	if err != nil {
		return nil, derrors.RenderFailed(g.cfg.Output.IndexFile, err)
	}

	return &Plan{
		Pages:     pages,
		PostCount: postCount,
		Sitemap:   sitemapXML,
		Index:     indexXML,
		Now:       now,
	}, nil
}

// Run performs a full generation and writes both documents.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	observability.InfoContext(ctx, "Starting sitemap generation",
		logfields.BaseURL(g.cfg.Site.BaseURL),
		logfields.Dir(g.cfg.Output.Directory))

	res, err := g.run(ctx)
	elapsed := time.Since(start)

	g.recorder.ObserveGenerationDuration(elapsed)
	if err != nil {
		g.recorder.SetOutcome(metrics.OutcomeFailed, time.Now())
		return nil, err
	}
	res.Duration = elapsed
	g.recorder.SetPageCounts(len(res.Pages), res.PostCount)
	g.recorder.SetOutcome(metrics.OutcomeSuccess, time.Now())

	observability.InfoContext(ctx, "Sitemap generation complete",
		logfields.Pages(len(res.Pages)),
		logfields.DurationMS(float64(elapsed.Microseconds())/1000))
	return res, nil
}

func (g *Generator) run(ctx context.Context) (*Result, error) {
	plan, err := g.Prepare(ctx)
	if err != nil {
		return nil, err
	}

	w := output.NewWriter(g.cfg.Output.Directory)
	written, err := w.Write(observability.WithStage(ctx, "write"),
		output.Document{Filename: g.cfg.Output.SitemapFile, Content: plan.Sitemap, Pages: len(plan.Pages)},
		output.Document{Filename: g.cfg.Output.IndexFile, Content: plan.Index, Pages: 1},
	)
	if err != nil {
		return nil, err
	}

	return &Result{
		Pages:       plan.Pages,
		PostCount:   plan.PostCount,
		SitemapPath: written[0],
		IndexPath:   written[1],
		GeneratedAt: plan.Now,
	}, nil
}
