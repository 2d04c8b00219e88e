package memory

import (
	"fmt"

	"github.com/aretw0/sortium/pkg/domain"
)

// Loader implements ports.GraphLoader using an in-memory index.
type Loader struct {
	order []domain.Node
	index map[string]int
}

// NewFromNodes creates a new Loader from domain objects.
// Duplicate ids are kept in the listing but lookups resolve to the first occurrence.
func NewFromNodes(nodes ...domain.Node) (*Loader, error) {
	l := &Loader{
		order: make([]domain.Node, 0, len(nodes)),
		index: make(map[string]int, len(nodes)),
	}
	for _, n := range nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("node missing ID")
		}
		if _, dup := l.index[n.ID]; !dup {
			l.index[n.ID] = len(l.order)
		}
		l.order = append(l.order, cloneNode(n))
	}
	return l, nil
}

// GetNode retrieves a node by ID.
func (l *Loader) GetNode(id string) (*domain.Node, error) {
	i, ok := l.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNodeNotFound, id)
	}
	node := cloneNode(l.order[i])
	return &node, nil
}

// ListNodes returns all nodes in the order they were provided.
func (l *Loader) ListNodes() ([]domain.Node, error) {
	out := make([]domain.Node, len(l.order))
	for i, n := range l.order {
		out[i] = cloneNode(n)
	}
	return out, nil
}

// cloneNode copies n including its options so callers cannot rewrite the graph's edges.
func cloneNode(n domain.Node) domain.Node {
	n.Options = append([]domain.Option(nil), n.Options...)
	return n
}
