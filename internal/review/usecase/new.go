package usecase

import (
	"laptopxplorer/internal/review"
	"laptopxplorer/internal/review/repository"
	"laptopxplorer/pkg/log"
)

// implUseCase is the private implementation of review.UseCase.
type implUseCase struct {
	repo    repository.Repository
	laptops review.LaptopFinder
	l       log.Logger
}

// New creates a new review UseCase implementation.
func New(repo repository.Repository, laptops review.LaptopFinder, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:    repo,
		laptops: laptops,
		l:       l,
	}
}
