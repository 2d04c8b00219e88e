package runtime

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/sortium/internal/prompt"
	"github.com/aretw0/sortium/pkg/domain"
	"github.com/aretw0/sortium/pkg/ports"
)

// Engine is the dialog-resolution state machine.
// It is stateless with respect to the conversation: the cursor lives in the
// domain.State value the caller passes in and receives back.
type Engine struct {
	loader      ports.GraphLoader
	classifier  ports.Classifier
	template    *prompt.Template
	entryNodeID string
	hooks       domain.LifecycleHooks
	logger      *slog.Logger
}

// EngineOption defines a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithEntryNode configures the initial node ID (default: "start").
func WithEntryNode(nodeID string) EngineOption {
	return func(e *Engine) {
		if nodeID != "" {
			e.entryNodeID = nodeID
		}
	}
}

// NewEngine creates a new engine with dependencies.
func NewEngine(loader ports.GraphLoader, classifier ports.Classifier, tmpl *prompt.Template, opts ...EngineOption) *Engine {
	e := &Engine{
		loader:      loader,
		classifier:  classifier,
		template:    tmpl,
		entryNodeID: domain.EntryNodeID,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start creates the initial state for a conversation. The entry node is not
// resolved here; a missing entry node surfaces on the first Render.
func (e *Engine) Start(ctx context.Context) *domain.State {
	e.logger.Debug("conversation started", "node_id", e.entryNodeID)
	return domain.NewState(e.entryNodeID)
}

// Render resolves the current node for presentation without advancing state.
func (e *Engine) Render(ctx context.Context, state *domain.State) (*domain.Node, error) {
	if state.Terminated() {
		return nil, domain.ErrConversationOver
	}
	node, err := e.resolve(state.CurrentNodeID)
	if err != nil {
		return nil, err
	}
	e.emitNodeEnter(ctx, node.ID)
	return node, nil
}

// Inspect returns the full graph definition for visualization or introspection tools.
func (e *Engine) Inspect() ([]domain.Node, error) {
	return e.loader.ListNodes()
}

func (e *Engine) resolve(id string) (*domain.Node, error) {
	node, err := e.loader.GetNode(id)
	if err != nil {
		return nil, &LookupError{NodeID: id, Err: err}
	}
	return node, nil
}
