package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/zeuskitchen/backend/internal/ai"
	"github.com/zeuskitchen/backend/internal/types"
)

const (
	chatModel          = "deepseek-chat"
	recipeMaxTokens    = 2000
	mealPlanMaxTokens  = 3000
	generationTimeout  = 90 * time.Second
	defaultTemperature = 0.7
	draftTTL           = 24 * time.Hour
)

const recipeSystemPrompt = "You are a professional chef. Respond only with the JSON object described in the user message, no prose before or after it."

const mealPlanSystemPrompt = "You are a professional chef and meal planning assistant. Respond only with the JSON object described in the user message, no prose before or after it."

// LLMService turns generation requests into validated recipes and meal plans.
// It builds the prompt, calls the chat completion API, extracts the JSON
// object from the response and synthesizes the typed result.
type LLMService struct {
	apiKey      string
	apiURL      string
	temperature float64
	client      *http.Client
	redis       *redis.Client
}

// NewLLMService reads the API credentials from the environment. The key may
// be provided directly or via a secret file.
func NewLLMService(redisClient *redis.Client) (*LLMService, error) {
	apiKey := os.Getenv("DEEPSEEK_API_KEY")
	if apiKey == "" {
		apiKeyFile := os.Getenv("DEEPSEEK_API_KEY_FILE")
		if apiKeyFile == "" {
			return nil, fmt.Errorf("DEEPSEEK_API_KEY or DEEPSEEK_API_KEY_FILE must be set")
		}

		apiKeyBytes, err := os.ReadFile(apiKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read API key file: %w", err)
		}

		apiKey = strings.TrimSpace(string(apiKeyBytes))
		if apiKey == "" {
			return nil, fmt.Errorf("API key file is empty")
		}
	}

	apiURL := os.Getenv("DEEPSEEK_API_URL")
	if apiURL == "" {
		apiURL = "https://api.deepseek.com/v1/chat/completions"
	}

	return &LLMService{
		apiKey:      apiKey,
		apiURL:      apiURL,
		temperature: defaultTemperature,
		client:      &http.Client{Timeout: generationTimeout},
		redis:       redisClient,
	}, nil
}

// Message represents a message in the chat.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request represents a chat completion request.
type Request struct {
	Model          string            `json:"model"`
	Messages       []Message         `json:"messages"`
	ResponseFormat map[string]string `json:"response_format"`
	Temperature    float64           `json:"temperature"`
	MaxTokens      int               `json:"max_tokens"`
}

// clampTemperature keeps the sampling temperature inside [0, 1].
func clampTemperature(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// chat sends one system+user exchange and returns the raw model output.
// Transport failures, non-200 statuses and empty completions are all
// reported as UpstreamError.
func (s *LLMService) chat(ctx context.Context, system, user string, maxTokens int) (string, error) {
	reqBody := Request{
		Model: chatModel,
		Messages: []Message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		ResponseFormat: map[string]string{"type": "json_object"},
		Temperature:    clampTemperature(s.temperature),
		MaxTokens:      maxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.client.Do(req)
	if err != nil {
		return "", &ai.UpstreamError{Op: "chat completion", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", &ai.UpstreamError{
			Op:  "chat completion",
			Err: fmt.Errorf("status %d: %s", resp.StatusCode, string(body)),
		}
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &ai.UpstreamError{Op: "chat completion", Err: fmt.Errorf("decode response: %w", err)}
	}

	if len(result.Choices) == 0 {
		return "", &ai.UpstreamError{Op: "chat completion", Err: fmt.Errorf("no choices in response")}
	}

	return result.Choices[0].Message.Content, nil
}

// GenerateRecipe runs the full recipe pipeline: prompt, completion,
// extraction, synthesis and validation.
func (s *LLMService) GenerateRecipe(ctx context.Context, req types.AIRecipeRequest) (*types.RecipeData, error) {
	prompt := ai.BuildRecipePrompt(req)

	raw, err := s.chat(ctx, recipeSystemPrompt, prompt, recipeMaxTokens)
	if err != nil {
		return nil, err
	}

	root, err := ai.ExtractObject(raw)
	if err != nil {
		return nil, err
	}

	servings := req.Servings
	if servings == 0 {
		servings = 4
	}
	return ai.SynthesizeRecipe(root, ai.RecipeDefaults{Servings: servings})
}

// GenerateMealPlan runs the full meal plan pipeline.
func (s *LLMService) GenerateMealPlan(ctx context.Context, req types.AIMealPlanRequest) (*types.GeneratedMealPlan, error) {
	prompt := ai.BuildMealPlanPrompt(req)

	raw, err := s.chat(ctx, mealPlanSystemPrompt, prompt, mealPlanMaxTokens)
	if err != nil {
		return nil, err
	}

	root, err := ai.ExtractObject(raw)
	if err != nil {
		return nil, err
	}

	return ai.SynthesizeMealPlan(root)
}

// PlanDraft is a generated meal plan kept in Redis until the user decides to
// persist or discard it.
type PlanDraft struct {
	ID        string                   `json:"id"`
	UserID    string                   `json:"user_id"`
	CreatedAt time.Time                `json:"created_at"`
	Plan      *types.GeneratedMealPlan `json:"plan"`
}

func planDraftKey(id string) string {
	return fmt.Sprintf("mealplan:draft:%s", id)
}

// SavePlanDraft stores a generated plan for later retrieval and returns the
// draft id. Drafts expire after 24 hours.
func (s *LLMService) SavePlanDraft(ctx context.Context, userID string, plan *types.GeneratedMealPlan) (string, error) {
	draft := PlanDraft{
		ID:        uuid.New().String(),
		UserID:    userID,
		CreatedAt: time.Now(),
		Plan:      plan,
	}

	data, err := json.Marshal(draft)
	if err != nil {
		return "", fmt.Errorf("failed to marshal draft: %w", err)
	}

	if err := s.redis.Set(ctx, planDraftKey(draft.ID), data, draftTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to save draft to Redis: %w", err)
	}

	return draft.ID, nil
}

// GetPlanDraft retrieves a plan draft from Redis.
func (s *LLMService) GetPlanDraft(ctx context.Context, id string) (*PlanDraft, error) {
	data, err := s.redis.Get(ctx, planDraftKey(id)).Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to get draft from Redis: %w", err)
	}

	var draft PlanDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}

	return &draft, nil
}

// DeletePlanDraft removes a plan draft from Redis.
func (s *LLMService) DeletePlanDraft(ctx context.Context, id string) error {
	if err := s.redis.Del(ctx, planDraftKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete draft from Redis: %w", err)
	}
	return nil
}
