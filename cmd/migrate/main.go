package main

import (
	"log"

	"github.com/antera/antera-backend/internal/config"
	"github.com/antera/antera-backend/internal/migration"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Applies the schema migrations and exits. Useful for deploy pipelines
// that migrate before rolling the API servers.
func main() {
	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.GetDSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migration complete")
}
