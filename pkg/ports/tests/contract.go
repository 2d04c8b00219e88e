package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/sortium/pkg/domain"
	"github.com/aretw0/sortium/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// GraphLoaderContractTest is a reusable test suite that verifies if an adapter complies with ports.GraphLoader.
// expected must hold the nodes the loader was built from, in declared order.
func GraphLoaderContractTest(t *testing.T, loader ports.GraphLoader, expected []domain.Node) {
	t.Helper()

	t.Run("GetNode_Success", func(t *testing.T) {
		for _, want := range expected {
			got, err := loader.GetNode(want.ID)
			require.NoError(t, err, "unexpected error getting node %s", want.ID)
			assert.Equal(t, want.Text, got.Text)
			assert.Equal(t, want.Options, got.Options)
		}
	})

	t.Run("GetNode_NotFound", func(t *testing.T) {
		_, err := loader.GetNode("non-existent-node")
		if !errors.Is(err, domain.ErrNodeNotFound) {
			t.Errorf("expected ErrNodeNotFound, got %v", err)
		}
	})

	t.Run("ListNodes", func(t *testing.T) {
		nodes, err := loader.ListNodes()
		require.NoError(t, err)
		require.Len(t, nodes, len(expected))
		for i := range expected {
			assert.Equal(t, expected[i].ID, nodes[i].ID, "declared order must be preserved")
		}
	})
}

// ClassificationCacheContractTest verifies that an adapter complies with ports.ClassificationCache.
func ClassificationCacheContractTest(t *testing.T, cache ports.ClassificationCache) {
	t.Helper()
	ctx := context.Background()

	t.Run("Miss", func(t *testing.T) {
		_, ok, err := cache.Get(ctx, "missing-key")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Set and Get", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "k1", "Buy"))
		val, ok, err := cache.Get(ctx, "k1")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "Buy", val)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "k2", "Buy"))
		require.NoError(t, cache.Set(ctx, "k2", "Leave"))
		val, ok, err := cache.Get(ctx, "k2")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "Leave", val)
	})

	t.Run("Empty value is a hit", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "k3", ""))
		val, ok, err := cache.Get(ctx, "k3")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "", val)
	})
}
