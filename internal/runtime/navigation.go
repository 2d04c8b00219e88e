package runtime

import (
	"context"
	"strings"
	"time"

	"github.com/aretw0/sortium/pkg/domain"
)

// Outcome classifies how a turn ended.
type Outcome string

const (
	// OutcomeAdvanced means the cursor moved to a new node.
	OutcomeAdvanced Outcome = "advanced"
	// OutcomeNoMatch means the classifier answer matched no option; the node is re-presented.
	OutcomeNoMatch Outcome = "no_match"
	// OutcomeExit means an exit option was taken and the conversation is over.
	OutcomeExit Outcome = "exit"
)

// TurnResult is the outcome of one Navigate call.
type TurnResult struct {
	// State is the cursor after the turn. It is always a fresh value.
	State *domain.State
	// Outcome describes which policy applied.
	Outcome Outcome
	// Choice is the trimmed classifier answer. It is not retained past the turn.
	Choice string
	// Option is the matched option, nil on OutcomeNoMatch.
	Option *domain.Option
}

// Navigate runs one read-render-classify-match-transition cycle for the raw user input.
// Fatal conditions (lookup, classification) return an error and leave the caller's
// state untouched; a non-match is not an error.
func (e *Engine) Navigate(ctx context.Context, state *domain.State, input string) (*TurnResult, error) {
	if state.Terminated() {
		return nil, domain.ErrConversationOver
	}

	node, err := e.resolve(state.CurrentNodeID)
	if err != nil {
		return nil, err
	}

	rendered, err := e.renderPrompt(node, input)
	if err != nil {
		return nil, err
	}

	choice, err := e.classify(ctx, node.ID, rendered)
	if err != nil {
		return nil, &ClassificationError{NodeID: node.ID, Err: err}
	}

	result := e.transition(state, node, choice)
	e.emitTurn(ctx, node.ID, result)
	return result, nil
}

func (e *Engine) classify(ctx context.Context, nodeID, rendered string) (string, error) {
	start := time.Now()
	choice, err := e.classifier.Classify(ctx, rendered)
	choice = strings.TrimSpace(choice)
	e.emitClassify(ctx, nodeID, choice, time.Since(start), err)
	if err != nil {
		return "", err
	}
	e.logger.Debug("classified input", "node_id", nodeID, "choice", choice)
	return choice, nil
}

// transition applies the matching policy: exact equality, first option in declared order.
func (e *Engine) transition(state *domain.State, node *domain.Node, choice string) *TurnResult {
	next := state.Clone()

	opt, ok := node.Match(choice)
	if !ok {
		e.logger.Info("no option matched", "node_id", node.ID, "choice", choice)
		return &TurnResult{State: next, Outcome: OutcomeNoMatch, Choice: choice}
	}

	if opt.IsExit() {
		next.Status = domain.StatusTerminated
		e.logger.Info("conversation terminated", "node_id", node.ID, "option", opt.Label)
		return &TurnResult{State: next, Outcome: OutcomeExit, Choice: choice, Option: &opt}
	}

	next.CurrentNodeID = opt.NextID
	next.History = append(next.History, opt.NextID)
	e.logger.Debug("transition", "from", node.ID, "to", opt.NextID, "option", opt.Label)
	return &TurnResult{State: next, Outcome: OutcomeAdvanced, Choice: choice, Option: &opt}
}
