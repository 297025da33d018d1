package openai

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seoscope/seoscope/internal/domain"
)

func TestNewProvider_RequiresAPIKey(t *testing.T) {
	p, err := NewProvider(Config{})
	require.Error(t, err)
	require.Nil(t, p)
}

func TestParseRecommendations_PlainArray(t *testing.T) {
	recs, err := parseRecommendations(`[
		{"title": "Tighten the intro", "description": "Lead with the answer.",
		 "action_steps": ["Rewrite paragraph one"], "impact": "Better engagement",
		 "effort": "low", "priority": "high", "confidence": 0.8}
	]`)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, "Tighten the intro", recs[0].Title)
	require.Equal(t, "ai", recs[0].Category)
	require.Equal(t, domain.PriorityHigh, recs[0].Priority)
	require.Equal(t, domain.EffortLow, recs[0].Effort)
	require.InDelta(t, 0.8, recs[0].Confidence, 1e-9)
}

func TestParseRecommendations_CodeFence(t *testing.T) {
	recs, err := parseRecommendations("```json\n[{\"title\": \"Fenced\"}]\n```")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, "Fenced", recs[0].Title)
}

func TestParseRecommendations_NormalizesUnknownEnums(t *testing.T) {
	recs, err := parseRecommendations(`[{"title": "X", "priority": "urgent", "effort": "massive"}]`)
	require.NoError(t, err)
	require.Equal(t, domain.PriorityLow, recs[0].Priority)
	require.Equal(t, domain.EffortMedium, recs[0].Effort)
}

func TestParseRecommendations_ClampsConfidence(t *testing.T) {
	recs, err := parseRecommendations(`[{"title": "X", "confidence": 7.5}]`)
	require.NoError(t, err)
	require.InDelta(t, 0.5, recs[0].Confidence, 1e-9)
}

func TestParseRecommendations_InvalidJSON(t *testing.T) {
	_, err := parseRecommendations("this is not json")
	require.Error(t, err)
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	analysis := &domain.AnalysisResult{
		Metrics: domain.Metrics{Title: "Page", TitleLength: 4, WordCount: 300},
		Score:   domain.Score{Overall: 72},
		Keywords: []string{
			"alpha", "beta",
		},
		Recommendations: []domain.Recommendation{
			{Title: "Add a meta description", Priority: domain.PriorityHigh},
		},
	}

	first := buildPrompt(analysis, domain.SuggestionContent)
	second := buildPrompt(analysis, domain.SuggestionContent)
	require.Equal(t, first, second)

	require.Contains(t, first, "Suggestion focus: content")
	require.Contains(t, first, "Overall score: 72")
	require.Contains(t, first, "alpha, beta")
	require.Contains(t, first, "Add a meta description")
}

func TestBuildPrompt_VariesBySuggestionType(t *testing.T) {
	analysis := &domain.AnalysisResult{}

	content := buildPrompt(analysis, domain.SuggestionContent)
	meta := buildPrompt(analysis, domain.SuggestionMeta)
	require.NotEqual(t, content, meta)
}

func TestCloneRecommendations_Isolation(t *testing.T) {
	original := []domain.Recommendation{
		{Title: "A", ActionSteps: []string{"step"}},
	}

	cloned := cloneRecommendations(original)
	cloned[0].ActionSteps[0] = "mutated"

	require.Equal(t, "step", original[0].ActionSteps[0])
}
