package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seoscope/seoscope/internal/domain"
)

func registeredProviders(t *testing.T) []string {
	t.Helper()

	var names []string
	err := buildContainer().Invoke(func(reg domain.ProviderRegistry) {
		var listErr error
		names, listErr = reg.List(context.Background())
		require.NoError(t, listErr)
	})
	require.NoError(t, err)
	return names
}

func TestBuildContainer_StaticProviderWithoutAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	names := registeredProviders(t)

	require.Contains(t, names, "static")
	require.NotContains(t, names, "openai")
}

func TestBuildContainer_BothProvidersWithAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")

	names := registeredProviders(t)

	require.ElementsMatch(t, []string{"static", "openai"}, names)
}
