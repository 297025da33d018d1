package static

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seoscope/seoscope/internal/domain"
)

func TestProvider_Name(t *testing.T) {
	require.Equal(t, "static", NewProvider().Name())
}

func TestProvider_SuggestPerType(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()
	analysis := &domain.AnalysisResult{}

	for _, st := range []domain.SuggestionType{
		domain.SuggestionContent,
		domain.SuggestionKeywords,
		domain.SuggestionMeta,
		domain.SuggestionLinks,
	} {
		recs, err := p.Suggest(ctx, analysis, st)
		require.NoError(t, err)
		require.NotEmpty(t, recs)
		for _, rec := range recs {
			require.Equal(t, "ai", rec.Category)
			require.NotEmpty(t, rec.Title)
			require.NotEmpty(t, rec.ActionSteps)
		}
	}
}

func TestProvider_SuggestUnknownType(t *testing.T) {
	recs, err := NewProvider().Suggest(context.Background(), &domain.AnalysisResult{}, "unknown")
	require.NoError(t, err)
	require.Empty(t, recs)
}

func TestProvider_SuggestNilAnalysis(t *testing.T) {
	recs, err := NewProvider().Suggest(context.Background(), nil, domain.SuggestionContent)
	require.Error(t, err)
	require.Nil(t, recs)
}

func TestProvider_SuggestReturnsCopies(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	first, err := p.Suggest(ctx, &domain.AnalysisResult{}, domain.SuggestionContent)
	require.NoError(t, err)

	first[0].Title = "mutated"

	second, err := p.Suggest(ctx, &domain.AnalysisResult{}, domain.SuggestionContent)
	require.NoError(t, err)
	require.NotEqual(t, "mutated", second[0].Title)
}
