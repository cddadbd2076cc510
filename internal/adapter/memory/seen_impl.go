package memory

import "context"

// SeenRepoImpl provides an in-process implementation for the SeenRepository
// interface. It lives for one run and is discarded at the end; it is also
// the substitute test suites inject in place of the Redis-backed set.
type SeenRepoImpl struct {
	seen map[string]struct{}
}

// NewSeenRepo creates an empty seen-set, optionally preloaded with links
// already present in a durable record store.
func NewSeenRepo(preload ...string) *SeenRepoImpl {
	seen := make(map[string]struct{}, len(preload))
	for _, link := range preload {
		seen[link] = struct{}{}
	}
	return &SeenRepoImpl{seen: seen}
}

func (r *SeenRepoImpl) Has(_ context.Context, normalizedURL string) (bool, error) {
	_, ok := r.seen[normalizedURL]
	return ok, nil
}

func (r *SeenRepoImpl) Add(_ context.Context, normalizedURL string) error {
	r.seen[normalizedURL] = struct{}{}
	return nil
}
