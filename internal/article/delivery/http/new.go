package http

import (
	"laptopxplorer/internal/article"
	"laptopxplorer/pkg/log"
)

type handler struct {
	l  log.Logger
	uc article.UseCase
}

// New creates a new HTTP handler for the article domain.
func New(l log.Logger, uc article.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
