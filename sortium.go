package sortium

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/sortium/internal/prompt"
	"github.com/aretw0/sortium/internal/runtime"
	"github.com/aretw0/sortium/pkg/adapters/openai"
	"github.com/aretw0/sortium/pkg/adapters/yamlgraph"
	"github.com/aretw0/sortium/pkg/domain"
	"github.com/aretw0/sortium/pkg/ports"
)

// Version is the release of the library and CLI. Overridden at build time with -ldflags.
var Version = "v0.1.0"

// Re-exported turn types so consumers do not need to reach into internal packages.
type (
	TurnResult = runtime.TurnResult
	Outcome    = runtime.Outcome
)

const (
	OutcomeAdvanced = runtime.OutcomeAdvanced
	OutcomeNoMatch  = runtime.OutcomeNoMatch
	OutcomeExit     = runtime.OutcomeExit
)

// Engine is the high-level entry point for the Sortium library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime      *runtime.Engine
	loader       ports.GraphLoader
	classifier   ports.Classifier
	cache        ports.ClassificationCache
	template     *prompt.Template
	templateText string
	runtimeOpts  []runtime.EngineOption
	hooks        domain.LifecycleHooks
	logger       *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLoader injects a custom GraphLoader, bypassing the YAML file.
func WithLoader(l ports.GraphLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithClassifier injects a custom intent classifier, bypassing the OpenAI adapter.
func WithClassifier(c ports.Classifier) Option {
	return func(e *Engine) {
		e.classifier = c
	}
}

// WithTemplate uses text as the prompt template instead of reading the template file.
func WithTemplate(text string) Option {
	return func(e *Engine) {
		e.templateText = text
	}
}

// WithCache memoizes classifier answers in cache.
func WithCache(cache ports.ClassificationCache) Option {
	return func(e *Engine) {
		e.cache = cache
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithEntryNode configures the initial node ID (default: "start").
func WithEntryNode(nodeID string) Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithEntryNode(nodeID))
	}
}

// New initializes a new Sortium Engine.
// graphPath is the dialog YAML file and templatePath the prompt template; either is
// ignored when the matching option (WithLoader, WithTemplate) is given.
// Without WithClassifier the OpenAI adapter is built from the environment.
func New(graphPath, templatePath string, opts ...Option) (*Engine, error) {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if eng.loader == nil {
		l, err := yamlgraph.Load(graphPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load dialog graph: %w", err)
		}
		eng.loader = l
	}

	var err error
	if eng.templateText != "" {
		eng.template, err = prompt.Parse(eng.templateText)
	} else {
		eng.template, err = prompt.Load(templatePath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt template: %w", err)
	}

	if eng.classifier == nil {
		c, err := openai.New(openai.WithLogger(eng.logger))
		if err != nil {
			return nil, fmt.Errorf("failed to create classifier: %w", err)
		}
		eng.classifier = c
	}
	if eng.cache != nil {
		eng.classifier = runtime.NewCachedClassifier(eng.classifier, eng.cache, eng.logger)
	}

	rtOpts := append([]runtime.EngineOption{
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
	}, eng.runtimeOpts...)
	eng.runtime = runtime.NewEngine(eng.loader, eng.classifier, eng.template, rtOpts...)

	return eng, nil
}

// Start creates a fresh conversation cursor at the entry node.
func (e *Engine) Start(ctx context.Context) *domain.State {
	return e.runtime.Start(ctx)
}

// Render returns the node the cursor points at.
func (e *Engine) Render(ctx context.Context, state *domain.State) (*domain.Node, error) {
	return e.runtime.Render(ctx, state)
}

// Navigate classifies input against the current node's options and advances the cursor.
func (e *Engine) Navigate(ctx context.Context, state *domain.State, input string) (*TurnResult, error) {
	return e.runtime.Navigate(ctx, state, input)
}

// Inspect returns the full graph definition for visualization or introspection tools.
func (e *Engine) Inspect() ([]domain.Node, error) {
	return e.runtime.Inspect()
}

// Loader returns the underlying graph loader.
func (e *Engine) Loader() ports.GraphLoader {
	return e.loader
}
