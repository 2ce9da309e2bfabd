package seo

import "encoding/xml"

const (
	MaxDescriptionLength = 160
	DefaultCurrency      = "USD"

	SitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"
)

// Config describes the public site the metadata points at.
type Config struct {
	BaseURL  string
	SiteName string
	Currency string
}

// Meta is everything a page head needs for one laptop.
type Meta struct {
	Title        string
	Description  string
	Keywords     string
	CanonicalURL string
	OpenGraph    OpenGraph
	Twitter      TwitterCard
	JSONLD       map[string]any
}

type OpenGraph struct {
	Type        string
	Title       string
	Description string
	URL         string
	Image       string
	SiteName    string
}

type TwitterCard struct {
	Card        string
	Title       string
	Description string
	Image       string
}

// URLSet is a sitemaps.org urlset document.
type URLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

type SitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}
