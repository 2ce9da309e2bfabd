package usecase

import (
	"time"

	"laptopxplorer/internal/pricing"
	"laptopxplorer/internal/pricing/repository"
	"laptopxplorer/pkg/log"
)

// implUseCase is the private implementation of pricing.UseCase.
type implUseCase struct {
	repo     repository.Repository
	laptops  pricing.LaptopCatalog
	notifier pricing.Notifier
	prefs    pricing.Preferences
	l        log.Logger
	now      func() time.Time
}

// New creates a new pricing UseCase implementation.
func New(repo repository.Repository, laptops pricing.LaptopCatalog, notifier pricing.Notifier, prefs pricing.Preferences, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		laptops:  laptops,
		notifier: notifier,
		prefs:    prefs,
		l:        l,
		now:      time.Now,
	}
}
