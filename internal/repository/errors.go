package repository

import "errors"

var (
	// ErrNoResults signals that a search rendered no result container before
	// the timeout budget. It is a soft failure: the resolver moves on to the
	// next strategy.
	ErrNoResults = errors.New("no search results rendered before timeout")

	// ErrNoMatch signals that every extraction technique came up empty on a
	// rendered result page.
	ErrNoMatch = errors.New("no profile link found on result page")
)
