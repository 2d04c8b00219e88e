package yamlgraph_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/sortium/pkg/adapters/yamlgraph"
	"github.com/aretw0/sortium/pkg/domain"
	contract "github.com/aretw0/sortium/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shopGraph = `
- id: start
  text: Hi
  options:
    - option: Buy
      next_id: catalog
    - option: Leave
      next_id: exit
- id: catalog
  text: We sell hats.
  options:
    - option: Back
      next_id: start
`

func TestYAMLLoader_Contract(t *testing.T) {
	loader, err := yamlgraph.Parse(strings.NewReader(shopGraph))
	require.NoError(t, err)

	expected := []domain.Node{
		{ID: "start", Text: "Hi", Options: []domain.Option{
			{Label: "Buy", NextID: "catalog"},
			{Label: "Leave", NextID: domain.ExitNodeID},
		}},
		{ID: "catalog", Text: "We sell hats.", Options: []domain.Option{
			{Label: "Back", NextID: "start"},
		}},
	}
	contract.GraphLoaderContractTest(t, loader, expected)
}

func TestYAMLLoader_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dialog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(shopGraph), 0o644))

	loader, err := yamlgraph.Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, loader.Path)

	node, err := loader.GetNode("catalog")
	require.NoError(t, err)
	assert.Equal(t, []string{"Back"}, node.Labels())
}

func TestYAMLLoader_DanglingEdgeLoads(t *testing.T) {
	src := `
- id: start
  text: Hi
  options:
    - option: Nowhere
      next_id: missing
`
	loader, err := yamlgraph.Parse(strings.NewReader(src))
	require.NoError(t, err)

	_, err = loader.GetNode("missing")
	assert.True(t, errors.Is(err, domain.ErrNodeNotFound))
}

func TestYAMLLoader_MissingStartIsNotALoadError(t *testing.T) {
	_, err := yamlgraph.Parse(strings.NewReader("- id: other\n  text: x\n"))
	assert.NoError(t, err)
}

func TestYAMLLoader_IgnoresUnknownKeys(t *testing.T) {
	src := `- id: start
  text: Hi
  note: designer comment
  options:
    - option: Leave
      next_id: exit
      weight: 3
`
	loader, err := yamlgraph.Parse(strings.NewReader(src))
	require.NoError(t, err)

	node, err := loader.GetNode("start")
	require.NoError(t, err)
	assert.Equal(t, "Hi", node.Text)
	assert.Equal(t, []domain.Option{{Label: "Leave", NextID: domain.ExitNodeID}}, node.Options)
}

func TestYAMLLoader_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"not a sequence", "id: start\n"},
		{"missing id", "- text: hello\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := yamlgraph.Parse(strings.NewReader(tt.src))
			assert.Error(t, err)
		})
	}
}

func TestYAMLLoader_MissingFile(t *testing.T) {
	_, err := yamlgraph.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
