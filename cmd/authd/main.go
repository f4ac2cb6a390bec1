package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/fenixAlex88/technical-support/internal/config"
	"github.com/fenixAlex88/technical-support/internal/infra/db"
	httpinfra "github.com/fenixAlex88/technical-support/internal/infra/http"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	store, err := db.NewStore(cfg)
	if err != nil {
		log.Fatalf("failed to init store: %v", err)
	}

	srv, err := httpinfra.NewServer(cfg, store)
	if err != nil {
		log.Fatalf("failed to init server: %v", err)
	}
	if err := srv.Run(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
