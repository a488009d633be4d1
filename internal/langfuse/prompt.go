package langfuse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

// PromptSource names a managed prompt and its local fallback.
type PromptSource struct {
	BaseURL   string
	PublicKey string
	SecretKey string

	Name  string
	Label string
	// File read when the prompt cannot be fetched
	FallbackPath string
	// Used when neither Langfuse nor the file yields a prompt
	Default string
}

var errDisabled = errors.New("langfuse disabled")

// LoadPrompt returns the managed prompt text. It tries Langfuse, then the
// fallback file, then Default.
func LoadPrompt(ctx context.Context, src PromptSource, logger *zap.Logger) string {
	if logger == nil {
		logger = zap.NewNop()
	}

	if src.Name != "" {
		prompt, err := fetchPrompt(ctx, src)
		if err == nil && strings.TrimSpace(prompt) != "" {
			logger.Info("prompt loaded from langfuse", zap.String("prompt", src.Name))
			return prompt
		}
		if err != nil && !errors.Is(err, errDisabled) {
			logger.Warn("prompt fetch failed", zap.String("prompt", src.Name), zap.Error(err))
		}
	}

	if src.FallbackPath != "" {
		data, err := os.ReadFile(src.FallbackPath)
		if err == nil && strings.TrimSpace(string(data)) != "" {
			return string(data)
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			logger.Warn("prompt file unreadable", zap.String("path", src.FallbackPath), zap.Error(err))
		}
	}

	return src.Default
}

func fetchPrompt(ctx context.Context, src PromptSource) (string, error) {
	if src.BaseURL == "" || src.PublicKey == "" || src.SecretKey == "" {
		return "", errDisabled
	}

	parsed, err := url.Parse(strings.TrimSuffix(src.BaseURL, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid LANGFUSE_BASE_URL: %w", err)
	}
	parsed.Path = strings.TrimSuffix(parsed.Path, "/") + "/api/public/v2/prompts/" + url.PathEscape(src.Name)
	if src.Label != "" {
		q := parsed.Query()
		q.Set("label", src.Label)
		parsed.RawQuery = q.Encode()
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return "", fmt.Errorf("create prompt request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(src.PublicKey, src.SecretKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call prompt API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("prompt API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		Type   string          `json:"type"`
		Prompt json.RawMessage `json:"prompt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode prompt response: %w", err)
	}

	switch payload.Type {
	case "", "text":
		var text string
		if err := json.Unmarshal(payload.Prompt, &text); err != nil {
			return "", fmt.Errorf("parse text prompt: %w", err)
		}
		return text, nil
	case "chat":
		var messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		}
		if err := json.Unmarshal(payload.Prompt, &messages); err != nil {
			return "", fmt.Errorf("parse chat prompt: %w", err)
		}
		// Only system messages make up the coach's instructions.
		var parts []string
		for _, m := range messages {
			if m.Role == "system" && m.Content != "" {
				parts = append(parts, m.Content)
			}
		}
		return strings.Join(parts, "\n\n"), nil
	default:
		return "", fmt.Errorf("unsupported prompt type %q", payload.Type)
	}
}
