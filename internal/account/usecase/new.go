package usecase

import (
	"time"

	"laptopxplorer/internal/account"
	"laptopxplorer/internal/account/repository"
	"laptopxplorer/pkg/log"
)

// implUseCase is the private implementation of account.UseCase.
type implUseCase struct {
	repo    repository.Repository
	laptops account.LaptopFinder
	reviews account.ReviewReader
	l       log.Logger
	now     func() time.Time
}

// New creates a new account UseCase implementation.
func New(repo repository.Repository, laptops account.LaptopFinder, reviews account.ReviewReader, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:    repo,
		laptops: laptops,
		reviews: reviews,
		l:       l,
		now:     time.Now,
	}
}
