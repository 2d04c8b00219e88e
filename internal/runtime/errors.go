package runtime

import "fmt"

// LookupError reports that the cursor points at a node the graph cannot resolve.
// It signals a broken graph, not a recoverable user-facing condition.
type LookupError struct {
	NodeID string
	Err    error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("failed to resolve node '%s': %v", e.NodeID, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// ClassificationError wraps a fatal classifier failure for one turn.
type ClassificationError struct {
	NodeID string
	Err    error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("classification failed at node '%s': %v", e.NodeID, e.Err)
}

func (e *ClassificationError) Unwrap() error {
	return e.Err
}
