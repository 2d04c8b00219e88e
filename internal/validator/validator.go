package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/sortium/pkg/domain"
	"github.com/aretw0/sortium/pkg/ports"
)

// DanglingEdge is an option whose next_id names no node.
type DanglingEdge struct {
	FromNodeID string
	Label      string
	NextID     string
}

// Report lists the problems found in a graph.
// Errors break a conversation when reached; warnings do not.
type Report struct {
	MissingStart bool
	Dangling     []DanglingEdge
	DuplicateIDs []string
	Unreachable  []string
	DeadEnds     []string
}

// HasErrors reports whether any traversal would fail.
func (r *Report) HasErrors() bool {
	return r.MissingStart || len(r.Dangling) > 0
}

// Err summarizes errors, or returns nil.
func (r *Report) Err() error {
	if !r.HasErrors() {
		return nil
	}
	var errs []string
	if r.MissingStart {
		errs = append(errs, fmt.Sprintf("Missing entry node '%s'", domain.EntryNodeID))
	}
	for _, d := range r.Dangling {
		errs = append(errs, fmt.Sprintf("Node '%s' option '%s' points to missing node '%s'", d.FromNodeID, d.Label, d.NextID))
	}
	return fmt.Errorf("found %d errors:\n- %s", len(errs), strings.Join(errs, "\n- "))
}

// Warnings returns human-readable warnings.
func (r *Report) Warnings() []string {
	var out []string
	for _, id := range r.DuplicateIDs {
		out = append(out, fmt.Sprintf("Duplicate node id '%s' (first occurrence wins)", id))
	}
	for _, id := range r.Unreachable {
		out = append(out, fmt.Sprintf("Node '%s' is unreachable from '%s'", id, domain.EntryNodeID))
	}
	for _, id := range r.DeadEnds {
		out = append(out, fmt.Sprintf("Node '%s' has no options and cannot be left", id))
	}
	return out
}

// ValidateGraph crawls the graph from startNodeID and reports broken links,
// unreachable nodes, duplicate ids and dead ends. The dialog runner never
// calls it; it backs the 'validate' command.
func ValidateGraph(loader ports.GraphLoader, startNodeID string) (*Report, error) {
	nodes, err := loader.ListNodes()
	if err != nil {
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}

	report := &Report{}
	seen := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if seen[n.ID] {
			report.DuplicateIDs = append(report.DuplicateIDs, n.ID)
			continue
		}
		seen[n.ID] = true
	}

	if _, err := loader.GetNode(startNodeID); err != nil {
		report.MissingStart = true
	}

	visited := make(map[string]bool)
	queue := []string{startNodeID}
	for len(queue) > 0 {
		currentID := queue[0]
		queue = queue[1:]

		if visited[currentID] {
			continue
		}
		visited[currentID] = true

		node, err := loader.GetNode(currentID)
		if err != nil {
			continue
		}
		if len(node.Options) == 0 {
			report.DeadEnds = append(report.DeadEnds, node.ID)
		}

		for _, opt := range node.Options {
			if opt.IsExit() {
				continue
			}
			if !seen[opt.NextID] {
				report.Dangling = append(report.Dangling, DanglingEdge{
					FromNodeID: node.ID,
					Label:      opt.Label,
					NextID:     opt.NextID,
				})
				continue
			}
			if !visited[opt.NextID] {
				queue = append(queue, opt.NextID)
			}
		}
	}

	listed := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if !visited[n.ID] && !listed[n.ID] {
			listed[n.ID] = true
			report.Unreachable = append(report.Unreachable, n.ID)
		}
	}

	return report, nil
}
