package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/zeuskitchen/backend/internal/service"
	"github.com/zeuskitchen/backend/internal/types"
)

type testEnv struct {
	router  *gin.Engine
	db      *gorm.DB
	auth    *service.AuthService
	recipes *service.RecipeService
	plans   *service.MealPlanService
	pantry  *service.PantryService
	llm     *stubLLMService
}

// newTestEnv builds the full HTTP surface over an in-memory SQLite database,
// with a stubbed generation pipeline.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := openTestDB(t)

	authService := service.NewAuthService(db, "test-secret")
	recipeService := service.NewRecipeService(db)
	pantryService := service.NewPantryService(db)
	mealPlanService := service.NewMealPlanService(db, recipeService, pantryService)
	llm := newStubLLMService()

	router := gin.New()
	v1 := router.Group("/api/v1")
	NewAuthHandler(authService).RegisterRoutes(v1)
	NewRecipeHandler(recipeService, authService).RegisterRoutes(v1)
	NewMealPlanHandler(mealPlanService, authService).RegisterRoutes(v1)
	NewPantryHandler(pantryService, authService).RegisterRoutes(v1)
	NewAIHandler(llm, recipeService, mealPlanService, authService, nil).RegisterRoutes(v1)

	return &testEnv{
		router:  router,
		db:      db,
		auth:    authService,
		recipes: recipeService,
		plans:   mealPlanService,
		pantry:  pantryService,
		llm:     llm,
	}
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}

	statements := []string{
		`CREATE TABLE users (
            id TEXT PRIMARY KEY, created_at DATETIME, updated_at DATETIME, deleted_at DATETIME,
            username TEXT, email TEXT, password_hash TEXT
        );`,
		`CREATE TABLE recipes (
            id TEXT PRIMARY KEY, created_at DATETIME, updated_at DATETIME, deleted_at DATETIME,
            user_id TEXT, title TEXT, description TEXT, image_url TEXT,
            ingredients TEXT, instructions TEXT, servings INTEGER,
            prep_time INTEGER, cook_time INTEGER, cuisine_type TEXT, difficulty TEXT,
            meal_types TEXT, dietary_tags TEXT, is_generated BOOLEAN, embedding TEXT
        );`,
		`CREATE TABLE meal_plans (
            id TEXT PRIMARY KEY, created_at DATETIME, updated_at DATETIME, deleted_at DATETIME,
            user_id TEXT, plan_name TEXT, week_start_date DATETIME, meals TEXT
        );`,
		`CREATE TABLE pantry_items (
            id TEXT PRIMARY KEY, created_at DATETIME, updated_at DATETIME, deleted_at DATETIME,
            user_id TEXT, item_name TEXT, quantity TEXT, unit TEXT
        );`,
		`CREATE TABLE recipe_likes (
            id TEXT PRIMARY KEY, created_at DATETIME, user_id TEXT, recipe_id TEXT,
            UNIQUE(user_id, recipe_id)
        );`,
		`CREATE TABLE recipe_saves (
            id TEXT PRIMARY KEY, created_at DATETIME, user_id TEXT, recipe_id TEXT,
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

// registerUser creates an account through the API and returns its token and id.
func (e *testEnv) registerUser(t *testing.T, username string) (string, uuid.UUID) {
	t.Helper()

	w := e.request(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "hunter2hunter2",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register failed with status %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode register response: %v", err)
	}

	claims, err := e.auth.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("register returned an invalid token: %v", err)
	}
	return resp.Token, claims.UserID
}

// request performs an HTTP call against the test router. A non-empty token
// is sent as a Bearer credential; a nil body sends no payload.
func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// stubLLMService is a canned generation pipeline for handler tests.
type stubLLMService struct {
	recipe *types.RecipeData
	plan   *types.GeneratedMealPlan
	err    error
	drafts map[string]*service.PlanDraft
}

func newStubLLMService() *stubLLMService {
	return &stubLLMService{drafts: map[string]*service.PlanDraft{}}
}

func (s *stubLLMService) GenerateRecipe(ctx context.Context, req types.AIRecipeRequest) (*types.RecipeData, error) {
	return s.recipe, s.err
}

func (s *stubLLMService) GenerateMealPlan(ctx context.Context, req types.AIMealPlanRequest) (*types.GeneratedMealPlan, error) {
	return s.plan, s.err
}

func (s *stubLLMService) SavePlanDraft(ctx context.Context, userID string, plan *types.GeneratedMealPlan) (string, error) {
	id := uuid.New().String()
	s.drafts[id] = &service.PlanDraft{ID: id, UserID: userID, Plan: plan}
	return id, nil
}

func (s *stubLLMService) GetPlanDraft(ctx context.Context, id string) (*service.PlanDraft, error) {
	draft, ok := s.drafts[id]
	if !ok {
		return nil, errors.New("draft not found")
	}
	return draft, nil
}

func (s *stubLLMService) DeletePlanDraft(ctx context.Context, id string) error {
	delete(s.drafts, id)
	return nil
}
