package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/sortium/internal/config"
	"github.com/aretw0/sortium/internal/presentation/graph"
	"github.com/aretw0/sortium/internal/validator"
	"github.com/aretw0/sortium/pkg/adapters/yamlgraph"
	"github.com/aretw0/sortium/pkg/domain"
)

// Graph writes the Mermaid diagram of the configured dialog graph.
// It needs neither the template nor a classifier credential.
func Graph(cfg *config.Config, w io.Writer) error {
	loader, err := yamlgraph.Load(cfg.GraphPath)
	if err != nil {
		return err
	}
	nodes, err := loader.ListNodes()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, graph.GenerateMermaid(nodes, nil))
	return err
}

// Validate lints the configured dialog graph. Warnings are printed; errors
// (missing start, dangling next_id) are returned.
func Validate(cfg *config.Config, w io.Writer) error {
	loader, err := yamlgraph.Load(cfg.GraphPath)
	if err != nil {
		return err
	}
	report, err := validator.ValidateGraph(loader, domain.EntryNodeID)
	if err != nil {
		return err
	}
	for _, warning := range report.Warnings() {
		printSystemMessage(w, "warning: %s", warning)
	}
	if err := report.Err(); err != nil {
		return err
	}
	fmt.Fprintf(w, "Graph %s is valid.\n", cfg.GraphPath)
	return nil
}
