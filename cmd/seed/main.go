package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"laptopxplorer/config"
	accountRepo "laptopxplorer/internal/account/repository/sqlstore"
	accountUC "laptopxplorer/internal/account/usecase"
	articleRepo "laptopxplorer/internal/article/repository/sqlstore"
	articleUC "laptopxplorer/internal/article/usecase"
	"laptopxplorer/internal/laptop"
	laptopRepo "laptopxplorer/internal/laptop/repository/sqlstore"
	laptopUC "laptopxplorer/internal/laptop/usecase"
	"laptopxplorer/internal/migration"
	"laptopxplorer/internal/pricing"
	pricingRepo "laptopxplorer/internal/pricing/repository/sqlstore"
	pricingUC "laptopxplorer/internal/pricing/usecase"
	reviewRepo "laptopxplorer/internal/review/repository/sqlstore"
	reviewUC "laptopxplorer/internal/review/usecase"
	"laptopxplorer/pkg/cache"
	"laptopxplorer/pkg/log"
	"laptopxplorer/pkg/sqldb"
)

// main loads a YAML catalog fixture into the configured database.
//
//	go run ./cmd/seed -file config/seed.example.yaml
func main() {
	file := flag.String("file", "config/seed.example.yaml", "path to the YAML fixture")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	f, err := loadFixture(*file)
	if err != nil {
		logger.Error(ctx, "Failed to load fixture: ", err)
		return
	}

	db, err := sqldb.Open(ctx, sqldb.Config{Driver: cfg.Database.Driver, DSN: cfg.Database.DSN})
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	if err := db.Migrate(ctx, migration.All()); err != nil {
		logger.Error(ctx, "Failed to migrate database: ", err)
		return
	}

	// A running API server picks up the new rows once its snapshot expires.
	snapshots := cache.NewMemory[[]laptop.Laptop](1, cfg.Cache.TTL)
	catalogUC := laptopUC.New(laptopRepo.New(db, logger), logger, snapshots, laptopUC.Config{})
	reviewsUC := reviewUC.New(reviewRepo.New(db, logger), catalogUC, logger)
	accountsUC := accountUC.New(accountRepo.New(db, logger), catalogUC, reviewsUC, logger)
	pricesUC := pricingUC.New(pricingRepo.New(db, logger), catalogUC, pricing.NewLogNotifier(logger), accountsUC, logger)
	articlesUC := articleUC.New(articleRepo.New(db, logger), catalogUC, logger)

	sum, err := seeder{catalog: catalogUC, prices: pricesUC, articles: articlesUC, l: logger}.run(ctx, f)
	if err != nil {
		logger.Error(ctx, "Seed failed: ", err)
		return
	}
	logger.Infof(ctx, "Seeded %d brands, %d categories, %d processors, %d laptops, %d prices, %d articles (%d skipped)",
		sum.Brands, sum.Categories, sum.Processors, sum.Laptops, sum.Prices, sum.Articles, sum.Skipped)
}
