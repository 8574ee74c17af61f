package param

import "context"

// Fetcher resolves configuration and secrets by parameter path. Secrets
// like the Leonardo API key never appear in env vars or source; env vars
// only carry the paths handed to a Fetcher.
type Fetcher interface {
	Fetch(context.Context, string) (string, error)
	FetchAll(context.Context, string) ([]string, error)
}
