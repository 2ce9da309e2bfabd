package usecase

import (
	"context"

	"laptopxplorer/internal/laptop"
	repo "laptopxplorer/internal/laptop/repository"
	"laptopxplorer/pkg/catalog"
)

// snapshot returns the cached full catalog, loading it on a miss.
func (uc *implUseCase) snapshot(ctx context.Context) ([]laptop.Laptop, error) {
	if laptops, ok := uc.snapshots.Get(ctx, snapshotKey); ok {
		return laptops, nil
	}

	gen := uc.generation.Load()
	laptops, err := uc.repo.ListLaptops(ctx, repo.ListLaptopsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.snapshot ListLaptops: %v", err)
		return nil, err
	}
	if uc.generation.Load() != gen {
		return laptops, nil
	}

	uc.snapshots.Set(ctx, snapshotKey, laptops)
	// An invalidation between the check and Set may have run its Delete first.
	if uc.generation.Load() != gen {
		uc.snapshots.Delete(ctx, snapshotKey)
	}
	return laptops, nil
}

// InvalidateSnapshot drops the cached catalog so the next read reloads it.
func (uc *implUseCase) InvalidateSnapshot(ctx context.Context) {
	uc.generation.Add(1)
	uc.snapshots.Delete(ctx, snapshotKey)
}

// All returns every laptop in the catalog.
func (uc *implUseCase) All(ctx context.Context) ([]laptop.Laptop, error) {
	return uc.snapshot(ctx)
}

// index projects laptops onto engine items and keys the originals by id.
func index(laptops []laptop.Laptop) ([]catalog.Item, map[string]laptop.Laptop) {
	items := make([]catalog.Item, len(laptops))
	byID := make(map[string]laptop.Laptop, len(laptops))
	for i, lp := range laptops {
		items[i] = lp.ToItem()
		byID[lp.ID] = lp
	}
	return items, byID
}

func resolve(items []catalog.Item, byID map[string]laptop.Laptop) []laptop.Laptop {
	out := make([]laptop.Laptop, 0, len(items))
	for _, it := range items {
		out = append(out, byID[it.ID])
	}
	return out
}
