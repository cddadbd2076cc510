package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/user/profile-resolver/internal/entity"
	"github.com/user/profile-resolver/internal/repository"
)

// resultMarkers are the known result-container selectors, most specific
// first. Any one of them appearing means the provider rendered results.
var resultMarkers = []string{
	"article[data-testid='result']",
	"article",
	".result",
}

// Searcher issues one strategy's query against the search provider and waits
// for results to render. Every failure here is soft: the resolver simply
// advances to the next strategy.
type Searcher struct {
	baseURL       string
	navTimeout    time.Duration
	markerTimeout time.Duration
	settleDelay   time.Duration
	logger        *zap.Logger
}

func NewSearcher(baseURL string, navTimeout, markerTimeout, settleDelay time.Duration, logger *zap.Logger) *Searcher {
	return &Searcher{
		baseURL:       baseURL,
		navTimeout:    navTimeout,
		markerTimeout: markerTimeout,
		settleDelay:   settleDelay,
		logger:        logger,
	}
}

// Search navigates the session to the strategy's query and blocks until a
// result container is visible. It returns repository.ErrNoResults when no
// marker appears within the timeout budget; navigation errors are wrapped
// but equally non-fatal to the run.
func (s *Searcher) Search(ctx context.Context, session repository.SearchSession, strategy entity.SearchStrategy) error {
	searchURL := fmt.Sprintf("%s/?q=%s&ia=web", s.baseURL, url.QueryEscape(strategy.Query))

	if err := session.Navigate(ctx, searchURL, s.navTimeout); err != nil {
		return fmt.Errorf("navigate to search: %w", err)
	}

	// Let the result page settle before polling for markers.
	if s.settleDelay > 0 {
		select {
		case <-time.After(s.settleDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	for _, marker := range resultMarkers {
		err := session.WaitVisible(ctx, marker, s.markerTimeout)
		if err == nil {
			return nil
		}
		if !errors.Is(err, context.DeadlineExceeded) {
			s.logger.Debug("marker wait failed",
				zap.String("marker", marker),
				zap.Error(err),
			)
		}
	}

	return repository.ErrNoResults
}
