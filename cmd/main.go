package main

import (
	"backend/config"
	"backend/routes"

	log "github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	r := routes.SetupRouter(cfg, db)
	log.Infof("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
