package commands

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/Uranus-Queen/fuwari/internal/config"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
	Stdout io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (defaults apply when missing)" default:"sitemapgen.yaml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Generate sitemap-0.xml and sitemap-index.xml"`
	Pages    PagesCmd    `cmd:"" help:"List the pages the sitemap would contain without writing files"`
	Init     InitCmd     `cmd:"" help:"Write an example configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLogLevel(c.Verbose)}))
	slog.SetDefault(logger)
	return nil
}

// parseLogLevel honours --verbose first, then SITEMAPGEN_LOG_LEVEL.
func parseLogLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	switch strings.ToLower(strings.TrimSpace(os.Getenv("SITEMAPGEN_LOG_LEVEL"))) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Overrides are command-line values that take precedence over the config file.
type Overrides struct {
	PostsDir    string
	OutputDir   string
	BaseURL     string
	MetricsFile string
}

// LoadConfig loads the configuration file, applies overrides and validates the result.
func LoadConfig(path string, o Overrides) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if o.PostsDir != "" {
		cfg.Posts.Directory = o.PostsDir
	}
	if o.OutputDir != "" {
		cfg.Output.Directory = o.OutputDir
	}
	if o.BaseURL != "" {
		cfg.Site.BaseURL = strings.TrimSuffix(o.BaseURL, "/")
	}
	if o.MetricsFile != "" {
		cfg.Metrics.Textfile = o.MetricsFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func stdout(g *Global) io.Writer {
	if g != nil && g.Stdout != nil {
		return g.Stdout
	}
	return os.Stdout
}

func logger(g *Global) *slog.Logger {
	if g != nil && g.Logger != nil {
		return g.Logger
	}
	return slog.Default()
}
