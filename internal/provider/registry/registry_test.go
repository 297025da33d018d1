package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seoscope/seoscope/internal/mocks"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := NewRegistry()
	ctx := context.Background()

	provider := mocks.NewMockSuggestionProvider(t)
	provider.EXPECT().Name().Return("openai")

	require.NoError(t, reg.Register(ctx, provider))

	got, err := reg.Get(ctx, "openai")
	require.NoError(t, err)
	require.Equal(t, provider, got)
}

func TestRegistry_RegisterNil(t *testing.T) {
	reg := NewRegistry()

	err := reg.Register(context.Background(), nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot be nil")
}

func TestRegistry_RegisterEmptyName(t *testing.T) {
	reg := NewRegistry()

	provider := mocks.NewMockSuggestionProvider(t)
	provider.EXPECT().Name().Return("")

	err := reg.Register(context.Background(), provider)
	require.Error(t, err)
	require.Contains(t, err.Error(), "name cannot be empty")
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	reg := NewRegistry()
	ctx := context.Background()

	first := mocks.NewMockSuggestionProvider(t)
	first.EXPECT().Name().Return("static")
	require.NoError(t, reg.Register(ctx, first))

	second := mocks.NewMockSuggestionProvider(t)
	second.EXPECT().Name().Return("static")

	err := reg.Register(ctx, second)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already registered")
}

func TestRegistry_GetUnknown(t *testing.T) {
	reg := NewRegistry()

	got, err := reg.Get(context.Background(), "missing")
	require.Error(t, err)
	require.Nil(t, got)
}

func TestRegistry_GetEmptyName(t *testing.T) {
	reg := NewRegistry()

	got, err := reg.Get(context.Background(), "")
	require.Error(t, err)
	require.Nil(t, got)
}

func TestRegistry_List(t *testing.T) {
	reg := NewRegistry()
	ctx := context.Background()

	names, err := reg.List(ctx)
	require.NoError(t, err)
	require.Empty(t, names)

	for _, name := range []string{"static", "openai"} {
		provider := mocks.NewMockSuggestionProvider(t)
		provider.EXPECT().Name().Return(name)
		require.NoError(t, reg.Register(ctx, provider))
	}

	names, err = reg.List(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"static", "openai"}, names)
}
