package main

import (
	"log"

	"github.com/kuldeepak/Kellerfensteronline/internal/config"
	"github.com/kuldeepak/Kellerfensteronline/internal/model"
	"github.com/kuldeepak/Kellerfensteronline/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	log.Println("Running migrations...")
	err = db.AutoMigrate(
		&model.Product{},
		&model.Step{},
		&model.Option{},
		&model.PriceMatrix{},
		&model.OrderConfiguration{},
	)
	if err != nil {
		log.Panicf("Migration failed: %v", err)
	}

	log.Println("Migrations completed")
}
