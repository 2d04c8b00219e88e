package memory_test

import (
	"testing"

	"github.com/aretw0/sortium/pkg/adapters/memory"
	"github.com/aretw0/sortium/pkg/domain"
	contract "github.com/aretw0/sortium/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryLoader_Contract(t *testing.T) {
	nodes := []domain.Node{
		{ID: "start", Text: "Hi", Options: []domain.Option{
			{Label: "Buy", NextID: "catalog"},
			{Label: "Leave", NextID: domain.ExitNodeID},
		}},
		{ID: "catalog", Text: "We sell hats."},
	}

	loader, err := memory.NewFromNodes(nodes...)
	require.NoError(t, err)

	contract.GraphLoaderContractTest(t, loader, nodes)
}

func TestInMemoryLoader_DuplicateFirstWins(t *testing.T) {
	loader, err := memory.NewFromNodes(
		domain.Node{ID: "start", Text: "first"},
		domain.Node{ID: "start", Text: "second"},
	)
	require.NoError(t, err)

	node, err := loader.GetNode("start")
	require.NoError(t, err)
	assert.Equal(t, "first", node.Text)
}

func TestInMemoryLoader_MissingID(t *testing.T) {
	_, err := memory.NewFromNodes(domain.Node{Text: "anonymous"})
	assert.Error(t, err)
}

func TestInMemoryLoader_ReturnsCopies(t *testing.T) {
	loader, err := memory.NewFromNodes(domain.Node{
		ID:      "start",
		Text:    "Hi",
		Options: []domain.Option{{Label: "Go", NextID: "next"}},
	})
	require.NoError(t, err)

	node, err := loader.GetNode("start")
	require.NoError(t, err)
	node.Text = "mutated"
	node.Options[0].NextID = "hijacked"
	node.Options = append(node.Options, domain.Option{Label: "Extra", NextID: "exit"})

	listed, err := loader.ListNodes()
	require.NoError(t, err)
	listed[0].Options[0].NextID = "hijacked"

	again, err := loader.GetNode("start")
	require.NoError(t, err)
	assert.Equal(t, "Hi", again.Text)
	assert.Equal(t, []domain.Option{{Label: "Go", NextID: "next"}}, again.Options)

	listedAgain, err := loader.ListNodes()
	require.NoError(t, err)
	assert.Equal(t, "next", listedAgain[0].Options[0].NextID)
}
