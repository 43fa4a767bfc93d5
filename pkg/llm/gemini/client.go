package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"google.golang.org/api/iterator"
	"google.golang.org/genai"

	"trailbuddy/pkg/config"
)

// Client implements llm.Provider for Google Gemini.
type Client struct {
	genaiClient *genai.Client
	apiKey      string
	modelName   string
	profiles    map[string]string // intent -> modelName
	timeout     time.Duration
	logPath     string

	mu sync.RWMutex
}

// NewClient creates a new Gemini client from configuration.
func NewClient(cfg config.LLMConfig) (*Client, error) {
	c := &Client{logPath: cfg.LogPath}
	if err := c.Configure(cfg); err != nil {
		return nil, err
	}
	return c, nil
}

// Configure updates the client with new settings.
func (c *Client) Configure(cfg config.LLMConfig) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.apiKey = cfg.Key
	c.modelName = cfg.Model
	c.profiles = cfg.Profiles
	c.timeout = cfg.Timeout.Std()

	if c.modelName == "" {
		c.modelName = "gemini-2.5-flash-lite"
	}
	if c.timeout <= 0 {
		c.timeout = 60 * time.Second
	}

	if c.apiKey == "" {
		// Can't initialize without a key; generation calls will report
		// not-configured and callers fall back.
		c.genaiClient = nil
		return nil
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: c.apiKey,
	})
	if err != nil {
		return fmt.Errorf("failed to create genai client: %w", err)
	}
	c.genaiClient = client

	if err := c.validateModel(context.Background()); err != nil {
		slog.Warn("Gemini model validation failed (proceeding anyway)", "error", err)
		// Startup is allowed even if the API is flaky; a truly invalid
		// key or model fails on the first generation call instead.
	}

	return nil
}

// HealthCheck verifies that the provider is configured.
func (c *Client) HealthCheck(ctx context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.genaiClient == nil {
		return fmt.Errorf("gemini client not configured (missing API key)")
	}
	return nil
}

// GenerateText sends a prompt and returns the text response.
func (c *Client) GenerateText(ctx context.Context, name, prompt string) (string, error) {
	c.mu.RLock()
	client := c.genaiClient
	timeout := c.timeout
	c.mu.RUnlock()

	if client == nil {
		return "", fmt.Errorf("gemini client not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	modelName := c.resolveModel(name)
	resp, err := client.Models.GenerateContent(ctx, modelName, genai.Text(prompt), nil)
	if err != nil {
		c.logPrompt(name, prompt, fmt.Sprintf("ERROR: %v", err))
		return "", fmt.Errorf("generate text error: %w", err)
	}

	text, err := getResponseText(resp)
	if err != nil {
		c.logPrompt(name, prompt, fmt.Sprintf("TEXT_PARSE_ERROR: %v", err))
		return "", err
	}

	c.logPrompt(name, prompt, text)
	return strings.TrimSpace(text), nil
}

// resolveModel picks the model for an intent from the configured profiles,
// falling back to the default model.
func (c *Client) resolveModel(name string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if m, ok := c.profiles[name]; ok && m != "" {
		return m
	}
	return c.modelName
}

// validateModel checks if the configured model is available for the API key.
func (c *Client) validateModel(ctx context.Context) error {
	// Ensure model name has 'models/' prefix
	name := c.modelName
	if !strings.HasPrefix(name, "models/") {
		name = "models/" + name
	}

	// Try to get the specific model (1 API call)
	_, err := c.genaiClient.Models.Get(ctx, name, nil)
	if err == nil {
		slog.Debug("Gemini model validation success", "model", c.modelName)
		return nil
	}

	slog.Warn("Gemini model validation failed, fetching available models...", "model", c.modelName, "error", err)

	// Fetch available models for recovery
	iter, listErr := c.genaiClient.Models.List(ctx, nil)
	if listErr != nil {
		slog.Warn("Failed to list models for recovery", "error", listErr)
		return nil // Proceed anyway
	}

	var availableModels []string
	for {
		resp, nextErr := iter.Next(ctx)
		if nextErr == iterator.Done {
			break
		}
		if nextErr != nil {
			break
		}
		if strings.Contains(strings.ToLower(resp.Name), "gemini") {
			availableModels = append(availableModels, resp.Name)
		}
	}

	slog.Error("Configured model not found", "configured", c.modelName)
	for _, m := range availableModels {
		slog.Error("available model: " + m)
	}

	return nil // Proceed anyway (lazy validation on generation)
}

func (c *Client) logPrompt(name, prompt, response string) {
	if c.logPath == "" {
		return
	}

	if err := os.MkdirAll(filepath.Dir(c.logPath), 0o755); err != nil {
		return
	}

	f, err := os.OpenFile(c.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	entry := fmt.Sprintf("[%s] PROMPT: %s\nPROMPT_TEXT:\n%s\n\nRESPONSE:\n%s\n%s\n",
		timestamp, name, prompt, response, strings.Repeat("-", 80))

	_, _ = f.WriteString(entry)
}

func getResponseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return sb.String(), nil
}
