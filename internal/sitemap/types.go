package sitemap

import (
	"fmt"
	"iter"
	"strconv"
	"time"

	"github.com/Uranus-Queen/fuwari/internal/foundation"
)

// Namespace is the sitemaps.org protocol namespace shared by urlset and sitemapindex.
const Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// TimestampLayout renders instants as ISO-8601 UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// ChangeFrequency is the crawler hint for how often a page changes.
type ChangeFrequency string

const (
	ChangeAlways  ChangeFrequency = "always"
	ChangeHourly  ChangeFrequency = "hourly"
	ChangeDaily   ChangeFrequency = "daily"
	ChangeWeekly  ChangeFrequency = "weekly"
	ChangeMonthly ChangeFrequency = "monthly"
	ChangeYearly  ChangeFrequency = "yearly"
	ChangeNever   ChangeFrequency = "never"
)

var changeFrequencyNormalizer = foundation.NewNormalizer(map[string]ChangeFrequency{
	"always":  ChangeAlways,
	"hourly":  ChangeHourly,
	"daily":   ChangeDaily,
	"weekly":  ChangeWeekly,
	"monthly": ChangeMonthly,
	"yearly":  ChangeYearly,
	"never":   ChangeNever,
})

// ParseChangeFrequency accepts any casing of a protocol change frequency.
func ParseChangeFrequency(raw string) (ChangeFrequency, error) {
	cf, err := changeFrequencyNormalizer.Normalize(raw)
	if err != nil {
		return "", fmt.Errorf("changefreq: %w", err)
	}
	return cf, nil
}

// ValidatePriority checks that p is a decimal string in [0.0, 1.0].
func ValidatePriority(p string) error {
	v, err := strconv.ParseFloat(p, 64)
	if err != nil {
		return fmt.Errorf("priority %q is not a decimal: %w", p, err)
	}
	if v < 0 || v > 1 {
		return fmt.Errorf("priority %q is outside [0.0, 1.0]", p)
	}
	return nil
}

// PageEntry is one <url> record. Path is site-relative and is appended to the
// base URL verbatim.
type PageEntry struct {
	Path            string
	LastModified    time.Time
	ChangeFrequency ChangeFrequency
	Priority        string
}

// SitemapReference is one <sitemap> record of a sitemap index.
type SitemapReference struct {
	Filename     string
	LastModified time.Time
}

// FormatTimestamp renders t the way every lastmod value is written.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Aggregate returns the static entries followed by every entry yielded by
// posts, in order. Nothing is deduplicated or sorted.
func Aggregate(static []PageEntry, posts iter.Seq[PageEntry]) []PageEntry {
	pages := make([]PageEntry, 0, len(static))
	pages = append(pages, static...)
	if posts == nil {
		return pages
	}
	for p := range posts {
		pages = append(pages, p)
	}
	return pages
}
