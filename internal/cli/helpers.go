package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/sortium/internal/config"
	"github.com/aretw0/sortium/internal/logging"
	"github.com/aretw0/sortium/pkg/domain"
)

// createLogger configures the application logger.
// It writes to Stderr so log lines never interleave with the dialog on Stdout.
func createLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.NewWithWriter(w, level, cfg.LogJSON), nil
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNodeEnter: func(ctx context.Context, e *domain.NodeEvent) {
			logger.Debug("Enter Node", "node_id", e.NodeID)
		},
		OnClassify: func(ctx context.Context, e *domain.ClassifyEvent) {
			if e.Err != nil {
				logger.Debug("Classify (Error)", "node_id", e.NodeID, "duration", e.Duration, "err", e.Err)
				return
			}
			logger.Debug("Classify", "node_id", e.NodeID, "choice", e.Choice, "duration", e.Duration)
		},
		OnTurn: func(ctx context.Context, e *domain.TurnEvent) {
			logger.Debug("Turn", "from", e.FromNodeID, "to", e.ToNodeID, "outcome", e.Outcome)
		},
	}
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled)
}

// handleExecutionError maps interruptions to a clean exit.
func handleExecutionError(err error) error {
	if err == nil || isInterrupted(err) {
		return nil
	}
	return err
}
