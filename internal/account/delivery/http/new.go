package http

import (
	"laptopxplorer/internal/account"
	"laptopxplorer/pkg/log"
)

type handler struct {
	l  log.Logger
	uc account.UseCase
}

// New creates a new HTTP handler for the account domain.
func New(l log.Logger, uc account.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
