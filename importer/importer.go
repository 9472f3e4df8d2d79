// Package importer seeds the catalog with sample products from a
// fakestoreapi-compatible HTTP API.
package importer

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"github.com/vasthra/vasthra-api/logger"
	"github.com/vasthra/vasthra-api/models"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://fakestoreapi.com"
	DefaultRate    = 83
	DefaultLimit   = 5
)

// Store is where imported rows are written.
type Store interface {
	CreateCategory(ctx context.Context, category *models.Category) error
	Create(ctx context.Context, product *models.Product) error
}

type categorySource struct {
	apiCategory    string
	name           string
	description    string
	targetAudience string
}

var sources = []categorySource{
	{
		apiCategory:    "men's clothing",
		name:           "Men's Clothing",
		description:    "Clothing for men including t-shirts, shirts, etc.",
		targetAudience: "men",
	},
	{
		apiCategory:    "women's clothing",
		name:           "Women's Clothing",
		description:    "Clothing for women including tops, dresses, etc.",
		targetAudience: "women",
	},
}

// remoteProduct is a product as returned by the source API.
type remoteProduct struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
}

type Options struct {
	SellerID uint
	Rate     decimal.Decimal // USD to INR
	Limit    int             // products per category
	BaseURL  string
}

type Summary struct {
	Categories int
	Products   int
}

type Importer struct {
	client *resty.Client
	store  Store
	opts   Options
	stock  func() int
}

func New(store Store, opts Options) *Importer {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Rate.IsZero() {
		opts.Rate = decimal.NewFromInt(DefaultRate)
	}
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}

	client := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(30*time.Second).
		SetHeader("Accept", "application/json")

	return &Importer{
		client: client,
		store:  store,
		opts:   opts,
		stock:  func() int { return rand.IntN(50) + 10 },
	}
}

// Run inserts one category per source and up to Limit products in each.
// It stops at the first failure; rows written before it are kept.
func (i *Importer) Run(ctx context.Context) (Summary, error) {
	var summary Summary

	for _, source := range sources {
		category := &models.Category{Name: source.name, Description: source.description}
		if err := i.store.CreateCategory(ctx, category); err != nil {
			return summary, fmt.Errorf("insert category %q: %w", source.name, err)
		}
		summary.Categories++
		logger.Info(ctx, "Category inserted", zap.String("name", category.Name), zap.Uint("id", category.ID))

		products, err := i.fetch(ctx, source.apiCategory)
		if err != nil {
			return summary, err
		}
		if len(products) > i.opts.Limit {
			products = products[:i.opts.Limit]
		}

		for _, remote := range products {
			product := &models.Product{
				SellerID:       i.opts.SellerID,
				CategoryID:     category.ID,
				Name:           remote.Title,
				Description:    remote.Description,
				Price:          remote.Price.Mul(i.opts.Rate).Round(2),
				Stock:          i.stock(),
				Size:           "M",
				Color:          "Mixed",
				ImageURL:       remote.Image,
				TargetAudience: source.targetAudience,
				IsActive:       true,
			}
			if err := i.store.Create(ctx, product); err != nil {
				return summary, fmt.Errorf("insert product %q: %w", remote.Title, err)
			}
			summary.Products++
			logger.Info(ctx, "Product added",
				zap.String("name", product.Name),
				zap.String("price", product.Price.StringFixed(2)),
				zap.String("category", category.Name))
		}
	}
	return summary, nil
}

func (i *Importer) fetch(ctx context.Context, apiCategory string) ([]remoteProduct, error) {
	var products []remoteProduct
	resp, err := i.client.R().
		SetContext(ctx).
		SetPathParam("category", apiCategory).
		SetResult(&products).
		Get("/products/category/{category}")
	if err != nil {
		return nil, fmt.Errorf("fetch %q: %w", apiCategory, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch %q: unexpected status %d", apiCategory, resp.StatusCode())
	}
	return products, nil
}
