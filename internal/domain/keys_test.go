package domain_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seoscope/seoscope/internal/domain"
)

func TestContentAnalysisKey_Deterministic(t *testing.T) {
	content := "The quick brown fox jumps over the lazy dog"

	key1 := domain.ContentAnalysisKey(content)
	key2 := domain.ContentAnalysisKey(content)

	require.Equal(t, key1, key2)
}

func TestContentAnalysisKey_DiffersByOneCharacter(t *testing.T) {
	key1 := domain.ContentAnalysisKey("The quick brown fox")
	key2 := domain.ContentAnalysisKey("The quick brown fax")

	require.NotEqual(t, key1, key2)
}

func TestContentAnalysisKey_Namespace(t *testing.T) {
	key := domain.ContentAnalysisKey("some content")

	require.Regexp(t, regexp.MustCompile(`^seo:content:[0-9a-f]{64}$`), key)
}

func TestHTMLParsingKey_Namespace(t *testing.T) {
	key := domain.HTMLParsingKey("<html><body>hi</body></html>")

	require.Regexp(t, regexp.MustCompile(`^seo:html:[0-9a-f]{64}$`), key)
}

func TestAIGenerationKey_Namespace(t *testing.T) {
	key := domain.AIGenerationKey("improve my title", "gpt-4o-mini", "openai")

	require.Regexp(t, regexp.MustCompile(`^seo:ai:openai:gpt-4o-mini:[0-9a-f]{64}$`), key)
}

func TestAIGenerationKey_EveryInputDiscriminates(t *testing.T) {
	base := domain.AIGenerationKey("prompt", "model", "provider")

	require.NotEqual(t, base, domain.AIGenerationKey("prompt2", "model", "provider"))
	require.NotEqual(t, base, domain.AIGenerationKey("prompt", "model2", "provider"))
	require.NotEqual(t, base, domain.AIGenerationKey("prompt", "model", "provider2"))
}

func TestAIGenerationKey_BoundaryShiftDoesNotCollide(t *testing.T) {
	// Same concatenation, different part boundaries.
	key1 := domain.AIGenerationKey("ab", "c", "p")
	key2 := domain.AIGenerationKey("b", "ca", "p")

	require.NotEqual(t, key1, key2)
}

func TestAIGenerationKey_SanitizesSegments(t *testing.T) {
	key := domain.AIGenerationKey("prompt", "model:v2", "my provider")

	require.Regexp(t, regexp.MustCompile(`^seo:ai:my-provider:model-v2:[0-9a-f]{64}$`), key)
}

func TestResultKey_ConfigDiscriminates(t *testing.T) {
	key1 := domain.ResultKey("content", "v1|max=100000|profile=full")
	key2 := domain.ResultKey("content", "v1|max=100000|profile=fast")

	require.NotEqual(t, key1, key2)
	require.True(t, strings.HasPrefix(key1, "seo:result:"))
}

func TestKeys_ToleratesHostileInput(t *testing.T) {
	inputs := []string{
		"",
		strings.Repeat("x", 1_000_000),
		"héllo wörld é世界",
		"control\x00\x01\x02chars",
	}

	wellFormed := regexp.MustCompile(`^seo:content:[0-9a-f]{64}$`)
	for _, input := range inputs {
		require.Regexp(t, wellFormed, domain.ContentAnalysisKey(input))
	}
}
