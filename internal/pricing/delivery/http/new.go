package http

import (
	"laptopxplorer/internal/pricing"
	"laptopxplorer/pkg/log"
)

type handler struct {
	l  log.Logger
	uc pricing.UseCase
}

// New creates a new HTTP handler for the pricing domain.
func New(l log.Logger, uc pricing.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
