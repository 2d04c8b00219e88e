package runtime_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aretw0/sortium/internal/runtime"
	"github.com/aretw0/sortium/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_MissingNodeAbortsBeforeClassifying(t *testing.T) {
	ctx := context.Background()
	c := &echo{answer: "Buy"}
	engine := newEngine(t, c, shopNodes())

	_, err := engine.Navigate(ctx, domain.NewState("ghost"), "hello")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNodeNotFound))
	assert.Empty(t, c.prompts, "no classifier call for an unresolvable node")
}

func TestEngine_DanglingEdgeSurfacesOnTraversal(t *testing.T) {
	ctx := context.Background()
	engine := newEngine(t, &echo{answer: "Broken"}, shopNodes())

	// Taking the dangling edge itself succeeds: validation is lazy.
	res, err := engine.Navigate(ctx, domain.NewState("catalog"), "break it")
	require.NoError(t, err)
	assert.Equal(t, "nowhere", res.State.CurrentNodeID)

	// The next turn fails on lookup, before any presentation.
	_, err = engine.Render(ctx, res.State)
	assert.ErrorIs(t, err, domain.ErrNodeNotFound)
}

func TestEngine_MissingStartNode(t *testing.T) {
	ctx := context.Background()
	engine := newEngine(t, &echo{}, []domain.Node{{ID: "other", Text: "x"}})

	_, err := engine.Render(ctx, engine.Start(ctx))
	assert.ErrorIs(t, err, domain.ErrNodeNotFound)
}

func TestEngine_ClassifierErrors(t *testing.T) {
	ctx := context.Background()
	transport := errors.New("dial tcp: connection refused")

	tests := []struct {
		name string
		err  error
	}{
		{"no answer", fmt.Errorf("wrapped: %w", domain.ErrNoAnswer)},
		{"transport", transport},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newEngine(t, &echo{err: tt.err}, shopNodes())
			state := engine.Start(ctx)

			res, err := engine.Navigate(ctx, state, "Buy")
			require.Error(t, err)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.err)

			var cErr *runtime.ClassificationError
			require.True(t, errors.As(err, &cErr))
			assert.Equal(t, "start", cErr.NodeID)
			assert.Equal(t, "start", state.CurrentNodeID, "cursor unchanged on fatal error")
		})
	}
}

func TestEngine_NoAnswerScenario(t *testing.T) {
	ctx := context.Background()
	engine := newEngine(t, &echo{err: domain.ErrNoAnswer}, shopNodes())

	_, err := engine.Navigate(ctx, engine.Start(ctx), "anything")
	assert.ErrorIs(t, err, domain.ErrNoAnswer)
	assert.Contains(t, err.Error(), "classifier returned no answer")
}

func TestEngine_MissingTemplate(t *testing.T) {
	ctx := context.Background()
	loader := mustLoader(t)
	engine := runtime.NewEngine(loader, &echo{answer: "Buy"}, nil)

	_, err := engine.Navigate(ctx, engine.Start(ctx), "x")
	assert.Error(t, err)
}
