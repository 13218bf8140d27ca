package main

import (
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"medimanager/m/internal/apiclient"
	"medimanager/m/internal/config"
	"medimanager/m/internal/database"
	"medimanager/m/internal/migrations"
	"medimanager/m/internal/seed"
	"medimanager/m/internal/store"
	"medimanager/m/internal/webui"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	db := database.Connect(cfg.DatabaseDSN)
	defer db.Close()

	migrations.Run(db)
	seed.EnsureOperator(db, cfg.AdminUsername, cfg.AdminPassword)

	api, err := apiclient.New(cfg.APIBaseURL, &http.Client{Timeout: 10 * time.Second})
	if err != nil {
		log.Fatalf("api client: %v", err)
	}

	handler := webui.New(api, store.New(db), cfg.Secret)

	log.Printf("MediManager web UI starting on :%s (backend %s)", cfg.HTTPPort, cfg.APIBaseURL)
	if err := http.ListenAndServe(":"+cfg.HTTPPort, handler.Router()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
