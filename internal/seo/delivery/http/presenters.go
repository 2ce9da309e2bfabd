package http

import (
	"encoding/xml"

	"laptopxplorer/internal/seo"
)

type openGraphResp struct {
	Type        string `json:"og:type"`
	Title       string `json:"og:title"`
	Description string `json:"og:description"`
	URL         string `json:"og:url"`
	Image       string `json:"og:image,omitempty"`
	SiteName    string `json:"og:site_name"`
}

type twitterResp struct {
	Card        string `json:"twitter:card"`
	Title       string `json:"twitter:title"`
	Description string `json:"twitter:description"`
	Image       string `json:"twitter:image,omitempty"`
}

type metaResp struct {
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Keywords     string         `json:"keywords"`
	CanonicalURL string         `json:"canonical_url"`
	OpenGraph    openGraphResp  `json:"open_graph"`
	Twitter      twitterResp    `json:"twitter"`
	JSONLD       map[string]any `json:"json_ld"`
}

func newMetaResp(m seo.Meta) metaResp {
	return metaResp{
		Title:        m.Title,
		Description:  m.Description,
		Keywords:     m.Keywords,
		CanonicalURL: m.CanonicalURL,
		OpenGraph: openGraphResp{
			Type:        m.OpenGraph.Type,
			Title:       m.OpenGraph.Title,
			Description: m.OpenGraph.Description,
			URL:         m.OpenGraph.URL,
			Image:       m.OpenGraph.Image,
			SiteName:    m.OpenGraph.SiteName,
		},
		Twitter: twitterResp{
			Card:        m.Twitter.Card,
			Title:       m.Twitter.Title,
			Description: m.Twitter.Description,
			Image:       m.Twitter.Image,
		},
		JSONLD: m.JSONLD,
	}
}

func encodeSitemap(set seo.URLSet) ([]byte, error) {
	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
