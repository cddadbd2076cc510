package repository

import "context"

// SeenRepository defines the interface for deduplication of normalized
// profile links. The resolver checks Has before every write and calls Add
// right after a successful one, so a link is recorded at most once per run.
type SeenRepository interface {
	Has(ctx context.Context, normalizedURL string) (bool, error)
	Add(ctx context.Context, normalizedURL string) error
}
