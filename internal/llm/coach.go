// Package llm narrates a day's gap analysis through an OpenAI chat model.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/blaisecz/nutrition-tracker/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrUnavailable means no model is configured.
	ErrUnavailable = errors.New("coach model unavailable")
	// ErrRequest means the model call failed.
	ErrRequest = errors.New("coach request failed")
	// ErrResponse means the model answered with something unusable.
	ErrResponse = errors.New("coach response invalid")
)

const DefaultModel = "gpt-4o-mini"

// DefaultSystemPrompt is used when no managed prompt is available.
const DefaultSystemPrompt = `You are a non-medical nutrition tracking assistant.

You receive one user's profile, their intake so far today, their daily targets and a computed gap analysis. Base every statement only on that data.

Goals:
- Summarize how today's intake compares to the targets.
- Point out the nutrients furthest below target and any clearly above it.
- Suggest practical food choices for the rest of the day.

Rules:
- Do NOT give medical advice or diagnoses.
- Do NOT mention diseases, supplements or medication.
- If few meals are logged, say the picture is incomplete.
- Be concise and concrete.

Respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences on today's balance.",
  "observations": ["3-5 short observations grounded in the numbers"],
  "guidance": ["2-4 concrete, food-based suggestions"]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing today's nutrition data for this user.

- "profile" holds body metrics, goal and derived targets.
- "current" and "targets" are nutrient totals (grams, kcal for calories, mg for cholesterol and sodium).
- "summary" holds the balance score (0-100), status and counts.
- "priorities" lists the nutrients needing attention, most urgent first.
- "meals_today" lists what was eaten, oldest first.

JSON:

%s

Respond in the required JSON format.`

// Coach produces a narrative for a day's analysis.
type Coach interface {
	Advise(ctx context.Context, in *domain.CoachContext) (*domain.CoachOutput, error)
}

type OpenAICoach struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAICoach returns nil when apiKey is empty.
func NewOpenAICoach(apiKey, model, systemPrompt string, opts ...option.RequestOption) *OpenAICoach {
	if apiKey == "" {
		return nil
	}
	if model == "" {
		model = DefaultModel
	}
	if strings.TrimSpace(systemPrompt) == "" {
		systemPrompt = DefaultSystemPrompt
	}

	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &OpenAICoach{
		client:       openai.NewClient(opts...),
		model:        model,
		systemPrompt: systemPrompt,
	}
}

func (c *OpenAICoach) Advise(ctx context.Context, in *domain.CoachContext) (*domain.CoachOutput, error) {
	if c == nil {
		return nil, ErrUnavailable
	}

	payload, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: serialize context: %v", ErrRequest, err)
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(fmt.Sprintf(userPromptTemplate, payload)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequest, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrResponse)
	}

	return ParseOutput(resp.Choices[0].Message.Content)
}

// ParseOutput decodes the model's JSON answer, tolerating a surrounding
// markdown code fence.
func ParseOutput(content string) (*domain.CoachOutput, error) {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	}

	var out domain.CoachOutput
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponse, err)
	}
	if strings.TrimSpace(out.Summary) == "" {
		return nil, fmt.Errorf("%w: empty summary", ErrResponse)
	}
	if out.Observations == nil {
		out.Observations = []string{}
	}
	if out.Guidance == nil {
		out.Guidance = []string{}
	}
	return &out, nil
}
