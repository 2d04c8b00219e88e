package ports

import "github.com/aretw0/sortium/pkg/domain"

// GraphLoader defines how the engine retrieves node definitions.
// This allows the graph source (YAML file, memory) to be decoupled.
type GraphLoader interface {
	// GetNode retrieves a node by ID.
	// It returns an error wrapping domain.ErrNodeNotFound if no node has that ID.
	GetNode(id string) (*domain.Node, error)

	// ListNodes returns every node in declared order.
	// This is used for introspection and visualization tools (e.g. 'sortium graph').
	ListNodes() ([]domain.Node, error)
}
