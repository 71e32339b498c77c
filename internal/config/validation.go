package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	derrors "github.com/Uranus-Queen/fuwari/internal/errors"
	"github.com/Uranus-Queen/fuwari/internal/sitemap"
)

// Validate checks the configuration after defaults have been applied.
func (c *Config) Validate() error {
	if err := validateBaseURL(c.Site.BaseURL); err != nil {
		return err
	}
	if err := c.validatePosts(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	for i, p := range c.StaticPages {
		field := fmt.Sprintf("static_pages[%d]", i)
		if !strings.HasPrefix(p.Path, "/") {
			return derrors.ValidationFailed(field+".path", "must start with /")
		}
		if err := validateMeta(field, p.ChangeFreq, p.Priority); err != nil {
			return err
		}
	}
	return nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return derrors.ValidationFailed("site.base_url", err.Error())
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return derrors.ValidationFailed("site.base_url", "scheme must be http or https")
	}
	if u.Host == "" {
		return derrors.ValidationFailed("site.base_url", "host is required")
	}
	if strings.HasSuffix(raw, "/") {
		return derrors.ValidationFailed("site.base_url", "must not end with /")
	}
	return nil
}

func (c *Config) validatePosts() error {
	for _, pattern := range c.Posts.Patterns {
		if !doublestar.ValidatePattern(pattern) {
			return derrors.ValidationFailed("posts.patterns", fmt.Sprintf("invalid pattern %q", pattern))
		}
	}
	if !strings.HasPrefix(c.Posts.RoutePrefix, "/") {
		return derrors.ValidationFailed("posts.route_prefix", "must start with /")
	}
	return validateMeta("posts", c.Posts.ChangeFreq, c.Posts.Priority)
}

func (c *Config) validateOutput() error {
	for field, name := range map[string]string{
		"output.sitemap_file": c.Output.SitemapFile,
		"output.index_file":   c.Output.IndexFile,
	} {
		if name != filepath.Base(name) || name == "." || name == ".." {
			return derrors.ValidationFailed(field, "must be a plain file name")
		}
	}
	if c.Output.SitemapFile == c.Output.IndexFile {
		return derrors.ValidationFailed("output.index_file", "must differ from output.sitemap_file")
	}
	return nil
}

func validateMeta(field, changefreq, priority string) error {
	if _, err := sitemap.ParseChangeFrequency(changefreq); err != nil {
		return derrors.ValidationFailed(field+".changefreq", err.Error())
	}
	if err := sitemap.ValidatePriority(priority); err != nil {
		return derrors.ValidationFailed(field+".priority", err.Error())
	}
	return nil
}
