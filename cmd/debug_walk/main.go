package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"catalog-manager/core/config"
	"catalog-manager/feature/catalog/walker"

	"go.uber.org/zap"
)

// Walks the configured catalog root and dumps the descriptors as JSON,
// without touching the database or storage. Useful to inspect what a
// reconciliation pass would see.
func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	companies, err := walker.New(cfg.Catalog, zap.NewNop()).Walk(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	out, err := json.MarshalIndent(companies, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
}
