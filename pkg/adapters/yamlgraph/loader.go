// Package yamlgraph loads a dialog graph from a YAML document.
//
// The document is a sequence of node records:
//
//	- id: start
//	  text: Hi, what would you like to do?
//	  options:
//	    - option: Buy
//	      next_id: catalog
//	    - option: Leave
//	      next_id: exit
//
// Edges are not resolved at load time; a dangling next_id only fails when it is traversed.
package yamlgraph

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/sortium/pkg/adapters/memory"
	"github.com/aretw0/sortium/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.GraphLoader over a parsed YAML graph.
type Loader struct {
	*memory.Loader
	Path string
}

// Load reads and parses the graph file at path.
func Load(path string) (*Loader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dialog graph: %w", err)
	}
	l, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	l.Path = path
	return l, nil
}

// Parse decodes a graph from r.
func Parse(r io.Reader) (*Loader, error) {
	// Unknown keys (designer notes and the like) are ignored.
	dec := yaml.NewDecoder(r)

	var nodes []domain.Node
	if err := dec.Decode(&nodes); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("dialog graph is empty")
		}
		return nil, fmt.Errorf("failed to parse dialog graph: %w", err)
	}

	for i, n := range nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("node #%d missing id", i+1)
		}
	}

	mem, err := memory.NewFromNodes(nodes...)
	if err != nil {
		return nil, err
	}
	return &Loader{Loader: mem}, nil
}
