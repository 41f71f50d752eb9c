package main

import (
	"log"
	"net/http"

	"github.com/shopspring/decimal"

	_ "github.com/devapi/product-catalog/docs"
	"github.com/devapi/product-catalog/internal/config"
	"github.com/devapi/product-catalog/internal/db"
	api "github.com/devapi/product-catalog/internal/http"
	"github.com/devapi/product-catalog/internal/http/handlers"
	rl "github.com/devapi/product-catalog/internal/http/rate_limiter"
	"github.com/devapi/product-catalog/internal/repo"
	"github.com/devapi/product-catalog/internal/storage"
)

// @title Product Catalog API
// @version 1.0
// @description REST API for managing catalog products and their image files.
// @host localhost:8080
// @BasePath /
func main() {
	// Prices are serialized as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Could not load configuration:", err)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	defer database.Close()

	files, err := storage.NewDir(cfg.UploadDir)
	if err != nil {
		log.Fatal("❌ Could not open upload directory:", err)
	}

	go rl.StartVisitorCleanupLoop()

	h := handlers.NewProductHandler(repo.NewPostgresProductRepository(database), files)
	r := api.NewRouter(h)

	log.Println("✅ Server running on", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}
