package sitemap

import (
	"bytes"
	"encoding/xml"
	"strings"
)

const indent = "  "

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []urlXML `xml:"url"`
}

type urlXML struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type sitemapIndex struct {
	XMLName  xml.Name     `xml:"sitemapindex"`
	Xmlns    string       `xml:"xmlns,attr"`
	Sitemaps []sitemapXML `xml:"sitemap"`
}

type sitemapXML struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod"`
}

// RenderSitemap serializes pages into a urlset document. Each loc is baseURL
// followed by the entry's path.
func RenderSitemap(pages []PageEntry, baseURL string) (string, error) {
	doc := urlSet{Xmlns: Namespace, URLs: make([]urlXML, 0, len(pages))}
	for _, p := range pages {
		doc.URLs = append(doc.URLs, urlXML{
			Loc:        baseURL + p.Path,
			LastMod:    FormatTimestamp(p.LastModified),
			ChangeFreq: string(p.ChangeFrequency),
			Priority:   p.Priority,
		})
	}
	return marshal(doc)
}

// RenderIndex serializes refs into a sitemapindex document. Each loc is
// baseURL + "/" + filename.
func RenderIndex(refs []SitemapReference, baseURL string) (string, error) {
	doc := sitemapIndex{Xmlns: Namespace, Sitemaps: make([]sitemapXML, 0, len(refs))}
	for _, r := range refs {
		doc.Sitemaps = append(doc.Sitemaps, sitemapXML{
			Loc:     strings.TrimSuffix(baseURL, "/") + "/" + r.Filename,
			LastMod: FormatTimestamp(r.LastModified),
		})
	}
	return marshal(doc)
}

func marshal(v any) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", indent)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
