package runtime_test

import (
	"context"
	"testing"

	"github.com/aretw0/sortium/internal/prompt"
	"github.com/aretw0/sortium/internal/runtime"
	"github.com/aretw0/sortium/pkg/adapters/memory"
	"github.com/aretw0/sortium/pkg/domain"
	"github.com/aretw0/sortium/pkg/ports"
	"github.com/stretchr/testify/require"
)

const testTemplate = "{decision_prompt}\n{option_list}\n{user_response}"

// shopNodes is the graph used across engine tests.
func shopNodes() []domain.Node {
	return []domain.Node{
		{ID: "start", Text: "Hi", Options: []domain.Option{
			{Label: "Buy", NextID: "catalog"},
			{Label: "Leave", NextID: domain.ExitNodeID},
		}},
		{ID: "catalog", Text: "We sell hats.", Options: []domain.Option{
			{Label: "Back", NextID: "start"},
			{Label: "Done", NextID: domain.ExitNodeID},
			{Label: "Broken", NextID: "nowhere"},
		}},
	}
}

// echo is a deterministic classifier that always answers with the same text.
type echo struct {
	answer  string
	err     error
	prompts []string
}

func (c *echo) Classify(ctx context.Context, p string) (string, error) {
	c.prompts = append(c.prompts, p)
	return c.answer, c.err
}

func newEngine(t *testing.T, c ports.Classifier, nodes []domain.Node, opts ...runtime.EngineOption) *runtime.Engine {
	t.Helper()
	loader, err := memory.NewFromNodes(nodes...)
	require.NoError(t, err)
	tmpl, err := prompt.Parse(testTemplate)
	require.NoError(t, err)
	return runtime.NewEngine(loader, c, tmpl, opts...)
}

func mustLoader(t *testing.T) *memory.Loader {
	t.Helper()
	loader, err := memory.NewFromNodes(shopNodes()...)
	require.NoError(t, err)
	return loader
}
