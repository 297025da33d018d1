// Package openai provides an AI suggestion bridge over the official
// OpenAI SDK. It implements the domain.SuggestionProvider interface,
// converting analysis results into prompts and model output back into
// domain recommendations. Identical prompts are memoized under a
// deterministic generation key so repeat calls are free.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/seoscope/seoscope/internal/domain"
	"github.com/seoscope/seoscope/internal/observability"
)

const providerName = "openai"

// Provider implements domain.SuggestionProvider for OpenAI.
type Provider struct {
	client openai.Client
	model  string

	mu   sync.Mutex
	memo map[string][]domain.Recommendation
}

var _ domain.SuggestionProvider = (*Provider)(nil)

// NewProvider creates a new OpenAI provider.
func NewProvider(config Config) (*Provider, error) {
	if config.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
	}

	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	if config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(time.Duration(config.Timeout)*time.Second))
	}

	if config.MaxRetries > 0 {
		opts = append(opts, option.WithMaxRetries(config.MaxRetries))
	}

	return &Provider{
		client: openai.NewClient(opts...),
		model:  config.Model,
		memo:   make(map[string][]domain.Recommendation),
	}, nil
}

// Suggest asks the model for supplementary recommendations.
func (p *Provider) Suggest(
	ctx context.Context,
	analysis *domain.AnalysisResult,
	suggestionType domain.SuggestionType,
) ([]domain.Recommendation, error) {
	if analysis == nil {
		return nil, errors.New("analysis cannot be nil")
	}

	prompt := buildPrompt(analysis, suggestionType)
	key := domain.AIGenerationKey(prompt, p.model, providerName)

	p.mu.Lock()
	cached, hit := p.memo[key]
	p.mu.Unlock()
	if hit {
		return cloneRecommendations(cached), nil
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling OpenAI API",
		observability.String("suggestion_type", string(suggestionType)))

	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: p.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		logger.Error("OpenAI API call failed", observability.Error(err))
		return nil, fmt.Errorf("OpenAI API call failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, errors.New("OpenAI returned no choices")
	}

	recs, err := parseRecommendations(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse suggestions: %w", err)
	}

	p.mu.Lock()
	p.memo[key] = recs
	p.mu.Unlock()

	return cloneRecommendations(recs), nil
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return providerName
}

const systemPrompt = `You are an SEO consultant. Respond with a JSON array only, no prose.
Each element: {"title": string, "description": string, "action_steps": [string],
"impact": string, "effort": "low"|"medium"|"high",
"priority": "critical"|"high"|"medium"|"low", "confidence": number 0..1}.`

// buildPrompt renders the analysis into a deterministic prompt so
// identical analyses always produce the identical generation key.
func buildPrompt(analysis *domain.AnalysisResult, suggestionType domain.SuggestionType) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Suggestion focus: %s\n", suggestionType)
	fmt.Fprintf(&b, "Overall score: %d\n", analysis.Score.Overall)

	m := analysis.Metrics
	fmt.Fprintf(&b, "Title (%d chars): %q\n", m.TitleLength, m.Title)
	fmt.Fprintf(&b, "Meta description (%d chars): %q\n", m.MetaDescriptionLength, m.MetaDescription)
	fmt.Fprintf(&b, "Word count: %d, H1: %d, H2: %d, H3: %d\n", m.WordCount, m.H1Count, m.H2Count, m.H3Count)
	fmt.Fprintf(&b, "Images: %d (%d with alt), links: %d internal / %d external\n",
		m.TotalImages, m.ImagesWithAlt, m.InternalLinks, m.ExternalLinks)

	if len(analysis.Keywords) > 0 {
		fmt.Fprintf(&b, "Top keywords: %s\n", strings.Join(analysis.Keywords, ", "))
	}

	if len(analysis.Recommendations) > 0 {
		b.WriteString("Existing findings:\n")
		for _, rec := range analysis.Recommendations {
			fmt.Fprintf(&b, "- [%s] %s\n", rec.Priority, rec.Title)
		}
	}

	fmt.Fprintf(&b, "Provide up to 5 additional %s suggestions not covered above.", suggestionType)

	return b.String()
}

// parseRecommendations decodes the model's JSON array, tolerating a
// markdown code fence around it.
func parseRecommendations(content string) ([]domain.Recommendation, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var recs []domain.Recommendation
	if err := json.Unmarshal([]byte(content), &recs); err != nil {
		return nil, err
	}

	for i := range recs {
		recs[i].Category = "ai"
		recs[i].Priority = normalizePriority(recs[i].Priority)
		recs[i].Effort = normalizeEffort(recs[i].Effort)
		if recs[i].Confidence < 0 || recs[i].Confidence > 1 {
			recs[i].Confidence = 0.5
		}
	}

	return recs, nil
}

func normalizePriority(p domain.Priority) domain.Priority {
	switch p {
	case domain.PriorityCritical, domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow:
		return p
	default:
		return domain.PriorityLow
	}
}

func normalizeEffort(e domain.Effort) domain.Effort {
	switch e {
	case domain.EffortLow, domain.EffortMedium, domain.EffortHigh:
		return e
	default:
		return domain.EffortMedium
	}
}

func cloneRecommendations(recs []domain.Recommendation) []domain.Recommendation {
	out := make([]domain.Recommendation, len(recs))
	for i, rec := range recs {
		out[i] = rec
		if rec.ActionSteps != nil {
			out[i].ActionSteps = append([]string(nil), rec.ActionSteps...)
		}
	}
	return out
}
