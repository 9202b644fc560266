package main

import (
	"log"

	"github.com/uniscout/uniscout-api/config"
	"github.com/uniscout/uniscout-api/database"
	"gorm.io/gorm"
)

// Seeds the database with reference data and a handful of sample
// institutions. Safe to run repeatedly; each seed step skips tables that
// already hold data.
func main() {
	if err := config.LoadENV(); err != nil {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	store, err := database.StartGORM()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()

	if err := store.Init(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	seeder := database.NewSeeder(db)
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
