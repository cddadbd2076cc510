package repository

import (
	"context"
	"time"
)

// SearchSession defines the contract for the live browser session the
// resolver drives. One session is shared sequentially across all subjects;
// implementations are not required to be safe for concurrent use.
type SearchSession interface {
	// Navigate loads the given URL, giving up after timeout.
	Navigate(ctx context.Context, url string, timeout time.Duration) error
	// WaitVisible blocks until an element matching selector is visible, or
	// the timeout elapses (context.DeadlineExceeded).
	WaitVisible(ctx context.Context, selector string, timeout time.Duration) error
	// AnchorHrefs returns the href of every element matching selector, in
	// document order. A selector that matches nothing yields an empty slice.
	AnchorHrefs(ctx context.Context, selector string) ([]string, error)
	// PageContent returns the full rendered markup of the current page.
	PageContent(ctx context.Context) (string, error)
	// Close tears the browser session down. Safe to call on all exit paths.
	Close() error
}
