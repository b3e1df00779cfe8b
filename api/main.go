package main

import (
	"log"
	"net/http"

	_ "github.com/rogerio-castellano/products-api/docs"
	"github.com/rogerio-castellano/products-api/internal/config"
	"github.com/rogerio-castellano/products-api/internal/db"
	router "github.com/rogerio-castellano/products-api/internal/http"
	"github.com/rogerio-castellano/products-api/internal/http/handlers"
	"github.com/rogerio-castellano/products-api/internal/repo"
)

// @title Products REST API
// @version 1.0
// @description REST API exposing CRUD operations over the product catalog.
// @BasePath /
func main() {
	cfg := config.Load()

	// A failed ping is logged but not fatal: the handle stays wired and
	// every request then fails against the store until it comes back.
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Println("❌ Could not connect to database:", err)
		log.Println("⚠️ Continuing without a verified store")
	}
	if database != nil {
		defer database.Close()
	}

	handlers.SetProductRepo(repo.NewPostgresProductRepository(database))

	r := router.NewRouter(cfg.FrontendURL)
	log.Println("✅ REST API running on port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
