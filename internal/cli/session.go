package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/sortium"
	"github.com/aretw0/sortium/internal/metrics"
	"github.com/aretw0/sortium/internal/presentation/tui"
	"github.com/aretw0/sortium/pkg/domain"
	"github.com/aretw0/sortium/pkg/runner"
)

// RunSession executes a single conversation until it exits, input ends or ctx is cancelled.
// Cancellation is a clean exit; load, lookup and classification errors are returned.
func RunSession(ctx context.Context, opts RunOptions) error {
	// Scopes the metrics server to this session.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cfg := opts.Config
	in, out := opts.streams()

	logger, err := createLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}

	hooks := domain.LifecycleHooks{}
	if cfg.LogLevel == "debug" {
		hooks = createDebugHooks(logger)
	}
	if cfg.MetricsAddr != "" {
		collectors := metrics.New()
		hooks = collectors.Hooks(hooks)
		go func() {
			if err := collectors.Serve(ctx, cfg.MetricsAddr, logger); err != nil {
				logger.Error("metrics server failed", "error", err)
			}
		}()
	}

	engine, cleanup, err := createEngine(ctx, cfg, logger, hooks)
	if err != nil {
		return err
	}
	defer cleanup()

	rich := isTerminal(out)
	if rich && !opts.Quiet {
		tui.PrintBanner(out, cfg.Agent, sortium.Version)
	}

	r := runner.NewRunner(
		runner.WithLogger(logger),
		runner.WithInputHandler(createHandler(in, out, cfg.Agent, rich)),
	)

	finalState, runErr := r.Run(ctx, engine)
	logCompletion(logger, out, finalState, runErr, opts.Quiet || !rich)
	return handleExecutionError(runErr)
}

// createHandler builds the console handler. On a terminal, node text is rendered as
// markdown and the agent tag is colored; otherwise output is plain text.
func createHandler(in io.Reader, out io.Writer, agent string, rich bool) *runner.TextHandler {
	prefix := agent + ":"
	opts := []runner.TextHandlerOption{}
	if rich {
		prefix = tui.AgentPrefix(agent)
		opts = append(opts, runner.WithTextHandlerRenderer(runner.ContentRenderer(tui.NewRenderer(terminalWidth(out)))))
	}
	opts = append(opts, runner.WithTextHandlerPrefix(prefix))
	return runner.NewTextHandler(in, out, opts...)
}

func logCompletion(logger *slog.Logger, out io.Writer, state *domain.State, err error, quiet bool) {
	nodeID := ""
	if state != nil {
		nodeID = state.CurrentNodeID
	}
	switch {
	case err == nil:
		logger.Info("conversation finished", "node_id", nodeID)
	case isInterrupted(err):
		logger.Info("conversation interrupted", "node_id", nodeID)
		if !quiet {
			fmt.Fprintln(out)
			printSystemMessage(out, "Interrupted at '%s' node.", nodeID)
		}
	default:
		logger.Error("conversation aborted", "node_id", nodeID, "error", err)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && tui.IsTerminal(f)
}

func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		return tui.TerminalWidth(f)
	}
	return 0
}
