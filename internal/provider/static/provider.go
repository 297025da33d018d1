// Package static provides a suggestion provider that returns canned
// per-type recommendations. It implements the domain.SuggestionProvider
// interface without making external API calls, providing deterministic
// output for testing and development purposes.
package static

import (
	"context"
	"errors"

	"github.com/seoscope/seoscope/internal/domain"
	"github.com/seoscope/seoscope/internal/observability"
)

const providerName = "static"

// Provider implements the domain.SuggestionProvider interface with
// fixed suggestions.
type Provider struct {
	name string
}

var _ domain.SuggestionProvider = (*Provider)(nil)

// NewProvider creates a new static provider.
// No configuration is required as this provider operates entirely in-memory.
func NewProvider() *Provider {
	return &Provider{name: providerName}
}

// Suggest returns the canned suggestions for the given type.
func (p *Provider) Suggest(
	ctx context.Context,
	analysis *domain.AnalysisResult,
	suggestionType domain.SuggestionType,
) ([]domain.Recommendation, error) {
	if analysis == nil {
		return nil, errors.New("analysis cannot be nil")
	}

	logger := observability.FromContext(ctx)
	logger.Debug("serving static suggestions",
		observability.String("suggestion_type", string(suggestionType)))

	recs, ok := cannedSuggestions[suggestionType]
	if !ok {
		return []domain.Recommendation{}, nil
	}

	out := make([]domain.Recommendation, len(recs))
	copy(out, recs)
	return out, nil
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return p.name
}

var cannedSuggestions = map[domain.SuggestionType][]domain.Recommendation{
	domain.SuggestionContent: {
		{
			Title:       "Answer the searcher's question in the first paragraph",
			Description: "Open with a direct answer to the query the page targets, then elaborate.",
			ActionSteps: []string{"Rewrite the introduction to answer the target query directly"},
			Category:    "ai",
			Impact:      "Direct answers improve featured-snippet eligibility.",
			Effort:      domain.EffortMedium,
			Priority:    domain.PriorityMedium,
			Confidence:  0.6,
		},
	},
	domain.SuggestionKeywords: {
		{
			Title:       "Target long-tail keyword variants",
			Description: "Add sections covering question-form variants of the primary keyword.",
			ActionSteps: []string{"Research question-form variants", "Add an FAQ section"},
			Category:    "ai",
			Impact:      "Long-tail variants capture lower-competition traffic.",
			Effort:      domain.EffortMedium,
			Priority:    domain.PriorityLow,
			Confidence:  0.55,
		},
	},
	domain.SuggestionMeta: {
		{
			Title:       "Write the meta description as a call to action",
			Description: "Phrase the description to tell the searcher what they gain by clicking.",
			ActionSteps: []string{"Rewrite the description with an active verb and a concrete benefit"},
			Category:    "ai",
			Impact:      "Action-oriented descriptions raise click-through rates.",
			Effort:      domain.EffortLow,
			Priority:    domain.PriorityMedium,
			Confidence:  0.65,
		},
	},
	domain.SuggestionLinks: {
		{
			Title:       "Use descriptive anchor text",
			Description: "Replace generic anchors like \"click here\" with text describing the target page.",
			ActionSteps: []string{"Audit anchors", "Rewrite generic anchors with descriptive text"},
			Category:    "ai",
			Impact:      "Descriptive anchors pass topical relevance to linked pages.",
			Effort:      domain.EffortLow,
			Priority:    domain.PriorityLow,
			Confidence:  0.6,
		},
	},
}
