// Package sitemap holds the page records of one generation run and renders
// them as sitemaps.org urlset and sitemapindex documents.
package sitemap
