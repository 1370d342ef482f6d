package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/zeuskitchen/backend/internal/models"
)

// RunMigrations brings the schema up to date. On Postgres the pgvector
// extension is created first so the recipes embedding column can migrate.
func RunMigrations(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
			return fmt.Errorf("failed to create vector extension: %w", err)
		}
	}

	log.Printf("Running schema migrations")
	return db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.RecipeLike{},
		&models.RecipeSave{},
		&models.MealPlan{},
		&models.PantryItem{},
	)
}
