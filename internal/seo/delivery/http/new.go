package http

import (
	"laptopxplorer/internal/seo"
	"laptopxplorer/pkg/log"
)

type handler struct {
	l  log.Logger
	uc seo.UseCase
}

// New creates a new HTTP handler for search engine metadata.
func New(l log.Logger, uc seo.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
