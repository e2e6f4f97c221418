package main

import (
	"fmt"
	"log"

	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/config"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/database"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/router"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/store"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}
	if err := database.Seed(db, cfg.Bootstrap); err != nil {
		log.Fatalf("seed database: %v", err)
	}

	r := router.SetupRouter(cfg, store.New(db))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
