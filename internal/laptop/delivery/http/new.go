package http

import (
	"laptopxplorer/internal/laptop"
	"laptopxplorer/pkg/log"
)

type handler struct {
	l  log.Logger
	uc laptop.UseCase
}

// New creates a new HTTP handler for the catalog domain.
func New(l log.Logger, uc laptop.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
