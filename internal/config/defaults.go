package config

import "github.com/Uranus-Queen/fuwari/internal/posts"

// Built-in values. They reproduce the site's original hard-coded generator.
// Post defaults are owned by the posts package.
const (
	DefaultBaseURL        = "https://zhangjun.xyz"
	DefaultPostsDirectory = "src/content/posts"
	DefaultOutputDir      = "dist"
	DefaultSitemapFile    = "sitemap-0.xml"
	DefaultIndexFile      = "sitemap-index.xml"
	DefaultPageChangeFreq = "daily"
	DefaultPagePriority   = "0.5"
)

// DefaultStaticPages lists the fixed routes. Both /about forms are present on purpose.
func DefaultStaticPages() []StaticPage {
	return []StaticPage{
		{Path: "/", ChangeFreq: DefaultPageChangeFreq, Priority: DefaultPagePriority},
		{Path: "/about", ChangeFreq: DefaultPageChangeFreq, Priority: DefaultPagePriority},
		{Path: "/about/", ChangeFreq: DefaultPageChangeFreq, Priority: DefaultPagePriority},
		{Path: "/archive/", ChangeFreq: DefaultPageChangeFreq, Priority: DefaultPagePriority},
	}
}

// Default returns a fully populated configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Site.BaseURL == "" {
		c.Site.BaseURL = DefaultBaseURL
	}
	if c.Posts.Directory == "" {
		c.Posts.Directory = DefaultPostsDirectory
	}
	if len(c.Posts.Patterns) == 0 {
		c.Posts.Patterns = append([]string(nil), posts.DefaultPatterns...)
	}
	if c.Posts.RoutePrefix == "" {
		c.Posts.RoutePrefix = posts.DefaultRoutePrefix
	}
	if c.Posts.ChangeFreq == "" {
		c.Posts.ChangeFreq = string(posts.DefaultChangeFrequency)
	}
	if c.Posts.Priority == "" {
		c.Posts.Priority = posts.DefaultPriority
	}
	if c.Output.Directory == "" {
		c.Output.Directory = DefaultOutputDir
	}
	if c.Output.SitemapFile == "" {
		c.Output.SitemapFile = DefaultSitemapFile
	}
	if c.Output.IndexFile == "" {
		c.Output.IndexFile = DefaultIndexFile
	}
	// nil means "not configured"; an explicit empty list disables static pages.
	if c.StaticPages == nil {
		c.StaticPages = DefaultStaticPages()
	}
	for i := range c.StaticPages {
		if c.StaticPages[i].ChangeFreq == "" {
			c.StaticPages[i].ChangeFreq = DefaultPageChangeFreq
		}
		if c.StaticPages[i].Priority == "" {
			c.StaticPages[i].Priority = DefaultPagePriority
		}
	}
}

const exampleConfig = `# sitemapgen configuration
site:
  # Absolute origin prefixed to every path. ${VAR} references are expanded.
  base_url: https://zhangjun.xyz

posts:
  directory: src/content/posts
  patterns: ["*.md", "*.mdx"]
  route_prefix: /posts/
  changefreq: weekly
  priority: "0.7"
  normalize_unicode: false

output:
  directory: dist
  sitemap_file: sitemap-0.xml
  index_file: sitemap-index.xml

static_pages:
  - path: /
    changefreq: daily
    priority: "0.5"
  - path: /about
    changefreq: daily
    priority: "0.5"
  - path: /about/
    changefreq: daily
    priority: "0.5"
  - path: /archive/
    changefreq: daily
    priority: "0.5"

# metrics:
#   textfile: /var/lib/node_exporter/textfile/sitemapgen.prom
`
