package ports

import "context"

// ClassificationCache stores classifier answers keyed by a digest of the prompt.
// Implementations must be safe to use from a single goroutine; a miss is
// reported with ok == false and a nil error.
type ClassificationCache interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
