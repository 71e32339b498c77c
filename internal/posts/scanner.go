// Package posts turns a directory of markdown posts into sitemap page entries.
package posts

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	derrors "github.com/Uranus-Queen/fuwari/internal/errors"
	"github.com/Uranus-Queen/fuwari/internal/logfields"
	"github.com/Uranus-Queen/fuwari/internal/observability"
	"github.com/Uranus-Queen/fuwari/internal/sitemap"
)

// Default post metadata.
const (
	DefaultRoutePrefix                             = "/posts/"
	DefaultChangeFrequency sitemap.ChangeFrequency = sitemap.ChangeWeekly
	DefaultPriority                                = "0.7"
)

// DefaultPatterns are the recognized content file patterns: plain and extended markdown.
var DefaultPatterns = []string{"*.md", "*.mdx"}

// Options controls how post files become page entries.
type Options struct {
	Patterns         []string
	RoutePrefix      string
	ChangeFrequency  sitemap.ChangeFrequency
	Priority         string
	NormalizeUnicode bool
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Patterns:        append([]string(nil), DefaultPatterns...),
		RoutePrefix:     DefaultRoutePrefix,
		ChangeFrequency: DefaultChangeFrequency,
		Priority:        DefaultPriority,
	}
}

// Scanner lists a posts directory and derives one PageEntry per post file.
type Scanner struct {
	opts Options
}

// NewScanner creates a scanner; zero-valued options fall back to the defaults.
func NewScanner(opts Options) *Scanner {
	def := DefaultOptions()
	if len(opts.Patterns) == 0 {
		opts.Patterns = def.Patterns
	}
	if opts.RoutePrefix == "" {
		opts.RoutePrefix = def.RoutePrefix
	}
	if opts.ChangeFrequency == "" {
		opts.ChangeFrequency = def.ChangeFrequency
	}
	if opts.Priority == "" {
		opts.Priority = def.Priority
	}
	return &Scanner{opts: opts}
}

// Matches reports whether name is a recognized post filename.
func (s *Scanner) Matches(name string) bool {
	for _, pattern := range s.opts.Patterns {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

// Scan returns a lazy sequence of entries for the post files in dir, in
// directory-listing order. The directory is read when the sequence is first
// iterated. A missing directory yields nothing; any other read failure is
// logged as a warning and also yields nothing.
func (s *Scanner) Scan(ctx context.Context, dir string) iter.Seq[sitemap.PageEntry] {
	return func(yield func(sitemap.PageEntry) bool) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				observability.DebugContext(ctx, "Posts directory not found, no posts to scan", logfields.Dir(dir))
				return
			}
			warn := derrors.ScanFailed(dir, fmt.Errorf("%w: %w", ErrDirUnreadable, err))
			observability.WarnContext(ctx, "Could not read posts directory", logfields.Dir(dir), logfields.Error(warn))
			return
		}

		for _, entry := range entries {
			name := entry.Name()
			if !s.Matches(name) {
				continue
			}

			path := filepath.Join(dir, name)
			info, err := os.Stat(path)
			if err != nil {
				observability.WarnContext(ctx, "Skipping post",
					logfields.File(name),
					logfields.Error(fmt.Errorf("%w: %w", ErrStatFailed, err)))
				continue
			}
			if info.IsDir() {
				continue
			}

			page := s.entry(name, info)
			observability.DebugContext(ctx, "Post discovered", logfields.File(name), logfields.Path(page.Path))
			if !yield(page) {
				return
			}
		}
	}
}

// Collect drains Scan into a slice.
func (s *Scanner) Collect(ctx context.Context, dir string) []sitemap.PageEntry {
	var out []sitemap.PageEntry
	for p := range s.Scan(ctx, dir) {
		out = append(out, p)
	}
	return out
}

func (s *Scanner) entry(name string, info fs.FileInfo) sitemap.PageEntry {
	prefix := s.opts.RoutePrefix
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return sitemap.PageEntry{
		Path:            prefix + Slug(name, s.opts.NormalizeUnicode) + "/",
		LastModified:    info.ModTime(),
		ChangeFrequency: s.opts.ChangeFrequency,
		Priority:        s.opts.Priority,
	}
}
