// Package version holds build metadata injected at link time:
//
//	go build -ldflags "-X github.com/Uranus-Queen/fuwari/internal/version.Version=v0.3.0 \
//	  -X github.com/Uranus-Queen/fuwari/internal/version.GitCommit=$(git rev-parse --short HEAD)"
package version

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String renders the line printed by sitemapgen --version.
func String() string {
	return Version + " (commit " + GitCommit + ", built " + BuildTime + ")"
}
