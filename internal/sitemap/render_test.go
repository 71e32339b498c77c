package sitemap

import (
	"encoding/xml"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testBase = "https://example.com"

var (
	runTime  = time.Date(2025, 3, 9, 8, 30, 0, 0, time.UTC)
	postTime = time.Date(2024, 12, 1, 10, 15, 30, 250_000_000, time.UTC)
)

func TestRenderSitemap_Golden(t *testing.T) {
	pages := []PageEntry{
		{Path: "/", LastModified: runTime, ChangeFrequency: ChangeDaily, Priority: "0.5"},
		{Path: "/posts/hello-world/", LastModified: postTime, ChangeFrequency: ChangeWeekly, Priority: "0.7"},
	}

	got, err := RenderSitemap(pages, testBase)
	require.NoError(t, err)

	want := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url>
    <loc>https://example.com/</loc>
    <lastmod>2025-03-09T08:30:00.000Z</lastmod>
    <changefreq>daily</changefreq>
    <priority>0.5</priority>
  </url>
  <url>
    <loc>https://example.com/posts/hello-world/</loc>
    <lastmod>2024-12-01T10:15:30.250Z</lastmod>
    <changefreq>weekly</changefreq>
    <priority>0.7</priority>
  </url>
</urlset>`
	require.Equal(t, want, got)
}

func TestRenderIndex_Golden(t *testing.T) {
	got, err := RenderIndex([]SitemapReference{{Filename: "sitemap-0.xml", LastModified: runTime}}, testBase)
	require.NoError(t, err)

	want := `<?xml version="1.0" encoding="UTF-8"?>
<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <sitemap>
    <loc>https://example.com/sitemap-0.xml</loc>
    <lastmod>2025-03-09T08:30:00.000Z</lastmod>
  </sitemap>
</sitemapindex>`
	require.Equal(t, want, got)
}

func TestRenderSitemap_PreservesOrder(t *testing.T) {
	paths := []string{"/", "/about", "/about/", "/archive/", "/posts/zeta/", "/posts/alpha/"}
	pages := make([]PageEntry, 0, len(paths))
	for _, p := range paths {
		pages = append(pages, PageEntry{Path: p, LastModified: runTime, ChangeFrequency: ChangeDaily, Priority: "0.5"})
	}

	out, err := RenderSitemap(pages, testBase)
	require.NoError(t, err)

	var parsed struct {
		URLs []struct {
			Loc string `xml:"loc"`
		} `xml:"url"`
	}
	require.NoError(t, xml.Unmarshal([]byte(out), &parsed))

	locs := make([]string, 0, len(parsed.URLs))
	for _, u := range parsed.URLs {
		locs = append(locs, u.Loc)
	}
	want := make([]string, 0, len(paths))
	for _, p := range paths {
		want = append(want, testBase+p)
	}
	require.Equal(t, want, locs)
}

func TestRenderSitemap_EscapesMarkupInLoc(t *testing.T) {
	out, err := RenderSitemap([]PageEntry{{Path: "/a&b<c>/", LastModified: runTime, ChangeFrequency: ChangeDaily, Priority: "0.5"}}, testBase)
	require.NoError(t, err)
	require.Contains(t, out, "<loc>https://example.com/a&amp;b&lt;c&gt;/</loc>")

	var parsed struct {
		URLs []struct {
			Loc string `xml:"loc"`
		} `xml:"url"`
	}
	require.NoError(t, xml.Unmarshal([]byte(out), &parsed))
	require.Equal(t, "https://example.com/a&b<c>/", parsed.URLs[0].Loc)
}

func TestRenderSitemap_Empty(t *testing.T) {
	out, err := RenderSitemap(nil, testBase)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, xml.Header))
	require.NotContains(t, out, "<url>")

	var parsed struct {
		XMLName xml.Name
	}
	require.NoError(t, xml.Unmarshal([]byte(out), &parsed))
	require.Equal(t, "urlset", parsed.XMLName.Local)
	require.Equal(t, Namespace, parsed.XMLName.Space)
}

func TestRenderSitemap_EmptyClosesOnSameLine(t *testing.T) {
	out, err := RenderSitemap([]PageEntry{}, testBase)
	require.NoError(t, err)
	require.Equal(t, xml.Header+`<urlset xmlns="`+Namespace+`"></urlset>`, out)
}

func TestRenderSitemap_ApostropheIsCharacterReference(t *testing.T) {
	out, err := RenderSitemap([]PageEntry{{Path: "/posts/it's/", LastModified: runTime, ChangeFrequency: ChangeWeekly, Priority: "0.7"}}, testBase)
	require.NoError(t, err)
	require.Contains(t, out, "<loc>https://example.com/posts/it&#39;s/</loc>")
}

func TestRenderIndex_TrailingSlashBase(t *testing.T) {
	out, err := RenderIndex([]SitemapReference{{Filename: "sitemap-0.xml", LastModified: runTime}}, testBase+"/")
	require.NoError(t, err)
	require.Contains(t, out, "<loc>https://example.com/sitemap-0.xml</loc>")
}

func TestFormatTimestamp_ConvertsToUTC(t *testing.T) {
	zone := time.FixedZone("UTC+8", 8*3600)
	ts := time.Date(2025, 1, 2, 8, 0, 0, 0, zone)
	require.Equal(t, "2025-01-02T00:00:00.000Z", FormatTimestamp(ts))
}

func TestAggregate(t *testing.T) {
	static := []PageEntry{{Path: "/"}, {Path: "/about"}}
	posts := slices.Values([]PageEntry{{Path: "/posts/b/"}, {Path: "/posts/a/"}, {Path: "/about"}})

	got := Aggregate(static, posts)

	paths := make([]string, 0, len(got))
	for _, p := range got {
		paths = append(paths, p.Path)
	}
	require.Equal(t, []string{"/", "/about", "/posts/b/", "/posts/a/", "/about"}, paths)
}

func TestAggregate_NilPosts(t *testing.T) {
	got := Aggregate([]PageEntry{{Path: "/"}}, nil)
	require.Len(t, got, 1)
}

func TestParseChangeFrequency(t *testing.T) {
	cf, err := ParseChangeFrequency(" Weekly ")
	require.NoError(t, err)
	require.Equal(t, ChangeWeekly, cf)

	_, err = ParseChangeFrequency("fortnightly")
	require.Error(t, err)
}

func TestValidatePriority(t *testing.T) {
	for _, ok := range []string{"0", "0.0", "0.5", "0.7", "1", "1.0"} {
		require.NoError(t, ValidatePriority(ok), ok)
	}
	for _, bad := range []string{"", "high", "-0.1", "1.01"} {
		require.Error(t, ValidatePriority(bad), bad)
	}
}
