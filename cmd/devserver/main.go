package main

import (
	"log"

	"github.com/thakoorchandan/navswara-go/config"
	"github.com/thakoorchandan/navswara-go/devserver"
)

func main() {
	log.Println("✅ Starting dev commerce API...")

	cfg := config.Load()

	server := devserver.New(cfg.JWTSecret)
	r := server.Router()

	log.Printf("🚀 Dev API running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
