package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/sortium"
	"github.com/aretw0/sortium/pkg/domain"
)

// Agent lines written by the loop.
const (
	MsgNoMatch      = "I'm sorry, I didn't understand your response."
	MsgFarewell     = "Thank you for using the dialog system."
	MsgLookupFailed = "Oops, something went wrong. Please try again."
)

// Runner handles the execution loop of the Sortium engine using provided IO.
// It uses an IOHandler strategy so the loop can run against a terminal or plain buffers.
type Runner struct {
	// Handler is the strategy for IO. If nil, a TextHandler on stdin/stdout is used.
	Handler IOHandler

	// Renderer is applied by the default TextHandler. Ignored when Handler is set.
	Renderer ContentRenderer

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	initialState *domain.State
}

// NewRunner creates a Runner configured by opts.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Run drives the conversation until an exit option is taken, input ends, or a
// fatal error occurs. It returns the last state reached; on error that is the
// state before the failed turn.
func (r *Runner) Run(ctx context.Context, engine *sortium.Engine) (*domain.State, error) {
	handler := r.resolveHandler()

	state := r.initialState
	if state == nil {
		state = engine.Start(ctx)
	}

	for {
		node, err := engine.Render(ctx, state)
		if err != nil {
			r.sayFailure(ctx, handler, err)
			return state, fmt.Errorf("render error: %w", err)
		}

		if err := handler.Output(ctx, node); err != nil {
			return state, fmt.Errorf("output error: %w", err)
		}

		input, err := handler.Input(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				r.Logger.Debug("input closed, leaving conversation", "node_id", state.CurrentNodeID)
				return state, nil
			}
			return state, fmt.Errorf("input error: %w", err)
		}

		res, err := engine.Navigate(ctx, state, input)
		if err != nil {
			r.sayFailure(ctx, handler, err)
			return state, fmt.Errorf("navigation error: %w", err)
		}
		r.Logger.Debug("turn completed",
			"node_id", state.CurrentNodeID,
			"outcome", res.Outcome,
			"choice", res.Choice,
			"next_node_id", res.State.CurrentNodeID,
		)
		state = res.State

		switch res.Outcome {
		case sortium.OutcomeNoMatch:
			if err := handler.Say(ctx, MsgNoMatch); err != nil {
				return state, fmt.Errorf("output error: %w", err)
			}
		case sortium.OutcomeExit:
			if err := handler.Say(ctx, MsgFarewell); err != nil {
				return state, fmt.Errorf("output error: %w", err)
			}
			return state, nil
		}
	}
}

// sayFailure tells the user a node could not be found. Other fatal errors are
// left to the caller to report.
func (r *Runner) sayFailure(ctx context.Context, handler IOHandler, err error) {
	if !errors.Is(err, domain.ErrNodeNotFound) {
		return
	}
	if sayErr := handler.Say(ctx, MsgLookupFailed); sayErr != nil {
		r.Logger.Debug("failed to report lookup error", "err", sayErr)
	}
}

// resolveHandler ensures a valid IOHandler is set.
func (r *Runner) resolveHandler() IOHandler {
	if r.Handler != nil {
		return r.Handler
	}
	// Memoize to prevent creating new pumps on subsequent Run() calls
	r.Handler = NewTextHandler(nil, nil, WithTextHandlerRenderer(r.Renderer))
	return r.Handler
}
