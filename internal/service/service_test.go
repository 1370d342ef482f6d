package service

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/zeuskitchen/backend/internal/models"
	"github.com/zeuskitchen/backend/internal/types"
)

// setupTestDB opens an in-memory SQLite database with the schema the
// services expect. Postgres-specific column types are declared as TEXT; the
// custom Valuer/Scanner types round-trip through them unchanged.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}

	statements := []string{
		`CREATE TABLE users (
            id TEXT PRIMARY KEY,
            created_at DATETIME,
            updated_at DATETIME,
            deleted_at DATETIME,
            username TEXT,
            email TEXT,
            password_hash TEXT
        );`,
		`CREATE TABLE recipes (
            id TEXT PRIMARY KEY,
            created_at DATETIME,
            updated_at DATETIME,
            deleted_at DATETIME,
            user_id TEXT,
            title TEXT,
            description TEXT,
            image_url TEXT,
            ingredients TEXT,
            instructions TEXT,
            servings INTEGER,
            prep_time INTEGER,
            cook_time INTEGER,
            cuisine_type TEXT,
            difficulty TEXT,
            meal_types TEXT,
            dietary_tags TEXT,
            is_generated BOOLEAN,
            embedding TEXT
        );`,
		`CREATE TABLE meal_plans (
            id TEXT PRIMARY KEY,
            created_at DATETIME,
            updated_at DATETIME,
            deleted_at DATETIME,
            user_id TEXT,
            plan_name TEXT,
            week_start_date DATETIME,
            meals TEXT
        );`,
		`CREATE TABLE pantry_items (
            id TEXT PRIMARY KEY,
            created_at DATETIME,
            updated_at DATETIME,
            deleted_at DATETIME,
            user_id TEXT,
            item_name TEXT,
            quantity TEXT,
            unit TEXT
        );`,
		`CREATE TABLE recipe_likes (
            id TEXT PRIMARY KEY,
            created_at DATETIME,
            user_id TEXT,
            recipe_id TEXT,
            UNIQUE(user_id, recipe_id)
        );`,
		`CREATE TABLE recipe_saves (
            id TEXT PRIMARY KEY,
            created_at DATETIME,
            user_id TEXT,
            recipe_id TEXT,
            UNIQUE(user_id, recipe_id)
        );`,
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("failed to create table: %v", err)
		}
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) uuid.UUID {
	t.Helper()

	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user.ID
}

func intPtr(v int) *int { return &v }

func testRecipeData(title string) *types.RecipeData {
	return &types.RecipeData{
		Title:       title,
		Description: "A quick weeknight dish",
		Ingredients: []types.Ingredient{
			{Name: "spaghetti", Quantity: "200", Unit: "g"},
			{Name: "eggs", Quantity: "2", Unit: "pieces"},
		},
		Instructions: []types.InstructionStep{
			{Step: 1, Instruction: "Boil the pasta"},
			{Step: 2, Instruction: "Mix in the eggs off the heat"},
		},
		Servings:    2,
		PrepTime:    intPtr(10),
		CookTime:    intPtr(15),
		CuisineType: "Italian",
		Difficulty:  types.DifficultyMedium,
		MealTypes:   []string{"Dinner"},
		DietaryTags: []string{"vegetarian"},
	}
}
