package runner

import (
	"context"

	"github.com/aretw0/sortium/pkg/domain"
)

// IOHandler defines the strategy for interacting with the user.
type IOHandler interface {
	// Output presents a dialog node: its text and the labels of its options.
	Output(ctx context.Context, node *domain.Node) error

	// Say presents a message spoken by the agent outside of any node
	// (non-match apology, farewell, failure notice).
	Say(ctx context.Context, msg string) error

	// Input reads one response from the user. io.EOF means the user is gone.
	Input(ctx context.Context) (string, error)
}

// ContentRenderer is a function that transforms the content before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)
