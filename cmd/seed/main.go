// Command seed populates a development API with demo customers and products
// so the console has data to browse.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/erp/console/internal/domain/catalog"
	"github.com/erp/console/internal/domain/partner"
	"github.com/erp/console/internal/infrastructure/api"
	"github.com/erp/console/internal/infrastructure/config"
	"github.com/erp/console/internal/infrastructure/logger"
	"github.com/erp/console/internal/infrastructure/session"
	"github.com/shopspring/decimal"
)

func main() {
	customers := flag.Int("customers", 20, "number of demo customers to create")
	products := flag.Int("products", 20, "number of demo products to create")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	store := session.NewStore()
	manager := session.NewManager(store, cfg.Auth.BaseURL, cfg.Auth.HandshakeSecret, nil, log)
	if err := manager.Issue(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to obtain a token: %v\n", err)
		os.Exit(1)
	}

	client := api.NewClient(cfg.API.BaseURL, session.NewTransport(nil, manager), log, api.Options{Timeout: cfg.HTTP.Timeout})

	faker := gofakeit.New(0)

	for i := 0; i < *customers; i++ {
		form := partner.CustomerForm{
			Identification: faker.Numerify("##########"),
			Name:           faker.FirstName(),
			LastName:       faker.LastName(),
			Phone:          faker.Phone(),
			Email:          faker.Email(),
			Address:        faker.Address().Address,
			IsActive:       true,
		}
		if err := client.CreateCustomer(ctx, form); err != nil {
			fmt.Fprintf(os.Stderr, "customer %d: %v\n", i+1, err)
			os.Exit(1)
		}
	}

	for i := 0; i < *products; i++ {
		form := catalog.ProductForm{
			SKU:         strings.ToUpper(faker.Lexify("???")) + "-" + faker.Numerify("#####"),
			Name:        faker.ProductName(),
			Description: faker.ProductDescription(),
			Price:       decimal.NewFromFloat(faker.Price(1, 500)).Round(2),
			Stock:       faker.Number(0, 200),
			IsActive:    true,
		}
		if err := client.CreateProduct(ctx, form); err != nil {
			fmt.Fprintf(os.Stderr, "product %d: %v\n", i+1, err)
			os.Exit(1)
		}
	}

	fmt.Printf("seeded %d customers and %d products\n", *customers, *products)
}
