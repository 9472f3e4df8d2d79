// Command import-products seeds the catalog with clothing from fakestoreapi.
package main

import (
	"context"
	"flag"

	"github.com/shopspring/decimal"
	"github.com/vasthra/vasthra-api/importer"
	"github.com/vasthra/vasthra-api/initializers"
	"github.com/vasthra/vasthra-api/logger"
	"github.com/vasthra/vasthra-api/repository"
	"go.uber.org/zap"
)

func main() {
	sellerID := flag.Uint("seller", 0, "seller user id that will own the imported products")
	rate := flag.Float64("rate", importer.DefaultRate, "USD to INR conversion rate")
	limit := flag.Int("limit", importer.DefaultLimit, "products per category")
	apiURL := flag.String("api", importer.DefaultBaseURL, "product API base URL")
	flag.Parse()

	envErr := initializers.LoadEnv()
	cfg, err := initializers.LoadConfig()
	if err != nil {
		logger.Initialize("development")
		logger.Log.Fatal("Invalid configuration", zap.Error(err))
	}
	logger.Initialize(cfg.Env)
	defer logger.Sync()
	if envErr != nil {
		logger.Log.Warn("No .env file found, using system environment variables", zap.Error(envErr))
	}

	if *sellerID == 0 {
		logger.Log.Fatal("-seller is required")
	}

	if err := initializers.ConnectToDB(cfg); err != nil {
		logger.Log.Fatal("Database unavailable", zap.Error(err))
	}
	defer initializers.CloseDB()

	imp := importer.New(repository.NewGormProductRepository(initializers.DB), importer.Options{
		SellerID: uint(*sellerID),
		Rate:     decimal.NewFromFloat(*rate),
		Limit:    *limit,
		BaseURL:  *apiURL,
	})

	summary, err := imp.Run(context.Background())
	if err != nil {
		logger.Log.Fatal("Import failed", zap.Error(err),
			zap.Int("categories", summary.Categories), zap.Int("products", summary.Products))
	}
	logger.Log.Info("Import completed", zap.Int("categories", summary.Categories), zap.Int("products", summary.Products))
}
