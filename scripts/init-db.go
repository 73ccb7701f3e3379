package main

import (
	"fmt"
	"log"

	"github.com/BackspaceAditya/JustEat/internal/config"
	"github.com/BackspaceAditya/JustEat/internal/database"
	"github.com/BackspaceAditya/JustEat/internal/migrations"
)

func main() {
	fmt.Println("Initializing database...")

	cfg := config.Load()

	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.Reset(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	fmt.Println("Database initialized.")
}
