package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/Uranus-Queen/fuwari/internal/generate"
	"github.com/Uranus-Queen/fuwari/internal/observability"
	"github.com/Uranus-Queen/fuwari/internal/sitemap"
)

// PagesCmd implements the 'pages' command: a dry run that prints every
// sitemap entry in output order.
type PagesCmd struct {
	PostsDir string `name:"posts-dir" short:"p" help:"Directory containing .md/.mdx posts" env:"SITEMAPGEN_POSTS_DIR"`
	BaseURL  string `name:"base-url" help:"Absolute site origin, e.g. https://example.com" env:"SITEMAPGEN_BASE_URL"`
}

func (p *PagesCmd) Run(global *Global, root *CLI) error {
	cfg, err := LoadConfig(root.Config, Overrides{PostsDir: p.PostsDir, BaseURL: p.BaseURL})
	if err != nil {
		return err
	}

	ctx := observability.WithRunID(context.Background(), observability.NewRunID())
	gen, err := generate.New(cfg)
	if err != nil {
		return err
	}
	plan, err := gen.Prepare(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout(global), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "LOC\tLASTMOD\tCHANGEFREQ\tPRIORITY")
	for _, page := range plan.Pages {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			cfg.Site.BaseURL+page.Path,
			sitemap.FormatTimestamp(page.LastModified),
			page.ChangeFrequency,
			page.Priority)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(stdout(global), "%d pages (%d posts)\n", len(plan.Pages), plan.PostCount)
	return nil
}
