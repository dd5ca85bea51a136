package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/noteflow/core/internal/config"
	"github.com/noteflow/core/internal/models"
	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

const defaultModel = "gpt-4o-mini"

// Provider generates note metadata. Abstracted so tests can stub it.
type Provider interface {
	GenerateMetadata(ctx context.Context, title, content string) (*Metadata, error)
	Name() string
}

// Metadata is the structured output parsed from the model response.
type Metadata struct {
	Summary  string          `json:"summary"`
	Keywords []string        `json:"keywords"`
	Topics   []string        `json:"topics"`
	QA       []models.QAPair `json:"qa"`
}

type openAIProvider struct {
	client openai.Client
	model  string
}

// NewProvider builds a provider against an OpenAI-compatible endpoint.
func NewProvider(cfg config.AIRuntimeConfig) Provider {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &openAIProvider{client: openai.NewClient(opts...), model: model}
}

func (p *openAIProvider) Name() string { return p.model }

const metadataPrompt = `You analyze a note and reply with JSON only, no prose, in this shape:
{"summary": "...", "keywords": ["..."], "topics": ["..."], "qa": [{"question": "...", "answer": "..."}]}
Summary: at most 3 sentences. Keywords: at most 8. Topics: at most 4 broad subjects. QA: 3 study questions with short answers.`

func (p *openAIProvider) GenerateMetadata(ctx context.Context, title, content string) (*Metadata, error) {
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(metadataPrompt),
			openai.UserMessage(fmt.Sprintf("Title: %s\n\n%s", title, content)),
		},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("empty completion response")
	}
	return parseMetadata(resp.Choices[0].Message.Content)
}

// parseMetadata tolerates models that wrap the JSON in a code fence.
func parseMetadata(raw string) (*Metadata, error) {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
		text = strings.TrimSpace(text)
	}

	var meta Metadata
	if err := json.Unmarshal([]byte(text), &meta); err != nil {
		return nil, fmt.Errorf("parse metadata response: %w", err)
	}
	if meta.Summary == "" {
		return nil, errors.New("metadata response missing summary")
	}
	return &meta, nil
}
