// seed loads the default product catalog into an empty catalog table.
// Existing products are left untouched; the tool refuses to run against a
// non-empty catalog so it cannot clobber live rates.
//
// Usage: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zuberiservices/hawker-ledger/internal/domain/entity"
	"github.com/zuberiservices/hawker-ledger/internal/infrastructure/postgres"
	"github.com/zuberiservices/hawker-ledger/pkg/config"
)

var defaultCatalog = []struct {
	name string
	rate int64
}{
	{"Magnum", 300},
	{"Brownie", 170},
	{"Cornetto", 130},
	{"Feast", 100},
	{"Donut", 100},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "PostgreSQL connection: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "schema migration: %v\n", err)
		os.Exit(1)
	}

	repo := postgres.NewProductRepository(pool)
	existing, err := repo.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "list products: %v\n", err)
		os.Exit(1)
	}
	if len(existing) > 0 {
		fmt.Fprintf(os.Stderr, "catalog already has %d products, nothing to do\n", len(existing))
		os.Exit(1)
	}

	now := time.Now()
	for _, p := range defaultCatalog {
		product := &entity.Product{
			ID:        uuid.New().String(),
			Name:      p.name,
			Rate:      decimal.NewFromInt(p.rate),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repo.Create(product); err != nil {
			fmt.Fprintf(os.Stderr, "insert %s: %v\n", p.name, err)
			os.Exit(1)
		}
		fmt.Printf("seeded %s @ %d\n", p.name, p.rate)
	}
}
