package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/Uranus-Queen/fuwari/cmd/sitemapgen/commands"
	"github.com/Uranus-Queen/fuwari/internal/config"
	derrors "github.com/Uranus-Queen/fuwari/internal/errors"
	"github.com/Uranus-Queen/fuwari/internal/logfields"
	"github.com/Uranus-Queen/fuwari/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// .env values must be visible to kong's env-backed flags.
	envErr := config.LoadEnvFile()

	cli := &commands.CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitemapgen"),
		kong.Description("Generate the blog's sitemap and sitemap index from the posts directory."),
		kong.Vars{"version": version.String()},
		kong.UsageOnError(),
	)
	if err != nil {
		return derrors.NewCLIErrorAdapter(false, nil).Report(derrors.InternalError("build command line parser", err))
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		parser.FatalIfErrorf(err)
		return 2
	}

	logEnvResult(envErr)

	global := &commands.Global{Logger: slog.Default(), Stdout: os.Stdout}
	runErr := ctx.Run(global, cli)
	return derrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).Report(runErr)
}

// logEnvResult runs after flag parsing so the configured log level applies.
func logEnvResult(err error) {
	switch {
	case err == nil:
		slog.Debug("Loaded .env file")
	case errors.Is(err, config.ErrNoEnvFile):
		slog.Debug("No .env file loaded", logfields.Error(err))
	default:
		slog.Warn("Ignoring unreadable .env file", logfields.Error(err))
	}
}
