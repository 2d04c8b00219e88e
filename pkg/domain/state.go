package domain

// ExecutionStatus defines the current mode of the engine mechanics.
type ExecutionStatus string

const (
	StatusActive     ExecutionStatus = "active"     // Running(current_id)
	StatusTerminated ExecutionStatus = "terminated" // an exit option was taken
)

// State is the conversation cursor. It is the only run-time state the engine
// owns and it lives for a single run.
type State struct {
	// CurrentNodeID is the identifier of the active node.
	CurrentNodeID string

	// Status indicates if the conversation is running or done.
	Status ExecutionStatus

	// History tracks the path taken, for debugging and graph overlays.
	History []string
}

// NewState creates a clean state starting at a specific node.
func NewState(startNodeID string) *State {
	return &State{
		CurrentNodeID: startNodeID,
		Status:        StatusActive,
		History:       []string{startNodeID},
	}
}

// Terminated reports whether the conversation has ended.
func (s *State) Terminated() bool {
	return s.Status == StatusTerminated
}

// Clone returns a copy that can be mutated without affecting s.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	next := *s
	next.History = append([]string(nil), s.History...)
	return &next
}
