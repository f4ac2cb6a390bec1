package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/fenixAlex88/technical-support/internal/config"
	"github.com/fenixAlex88/technical-support/internal/gateway"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	srv, err := gateway.NewServer(cfg)
	if err != nil {
		log.Fatalf("failed to init gateway: %v", err)
	}
	if err := srv.Run(); err != nil {
		log.Fatalf("gateway exited: %v", err)
	}
}
