package usecase

import (
	"laptopxplorer/internal/article"
	"laptopxplorer/internal/article/repository"
	"laptopxplorer/pkg/log"
)

// implUseCase is the private implementation of article.UseCase.
type implUseCase struct {
	repo    repository.Repository
	laptops article.LaptopFinder
	l       log.Logger
}

// New creates a new article UseCase implementation.
func New(repo repository.Repository, laptops article.LaptopFinder, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:    repo,
		laptops: laptops,
		l:       l,
	}
}
