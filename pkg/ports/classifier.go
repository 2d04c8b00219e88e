package ports

import "context"

// Classifier interprets a rendered decision prompt and returns free text.
// The engine expects the text to be one of the current option labels, but
// enforces that itself; implementations only report transport-level failures.
type Classifier interface {
	Classify(ctx context.Context, prompt string) (string, error)
}

// ClassifierFunc adapts a plain function to the Classifier interface.
type ClassifierFunc func(ctx context.Context, prompt string) (string, error)

// Classify calls f(ctx, prompt).
func (f ClassifierFunc) Classify(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
