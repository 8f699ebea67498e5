package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/threadcraft/internal/config"
	"github.com/threadcraft/internal/db"
	"github.com/threadcraft/internal/router"
	"github.com/threadcraft/internal/service"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	gdb, err := db.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	if err := db.EnsureAdmin(gdb, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to ensure admin account: %v", err)
	}

	if err := db.SeedSections(gdb); err != nil {
		log.Fatalf("failed to seed sections: %v", err)
	}

	if err := service.SeedPlaceholders(cfg.UploadDir); err != nil {
		log.Printf("failed to generate placeholder images: %v", err)
	}

	r := router.SetupRouter(cfg, gdb)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
