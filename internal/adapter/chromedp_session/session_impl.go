package chromedp_session

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

const userAgent = `Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/108.0.0.0 Safari/537.36`

// Timeout for element queries and content retrieval; both operate on the
// already-loaded page and should be near-instant.
const queryTimeout = 5 * time.Second

// Session implements repository.SearchSession on top of a single headless
// Chrome tab. One Session is shared sequentially across the whole run.
type Session struct {
	browserCtx  context.Context
	allocCancel context.CancelFunc
	logger      *zap.Logger
}

// New launches the browser and opens the tab used for every search. The
// returned Session must be closed on all exit paths.
func New(headless bool, logger *zap.Logger) (*Session, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.UserAgent(userAgent),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, _ := chromedp.NewContext(allocCtx)

	// Start the browser eagerly so launch failures surface during setup
	// instead of on the first subject.
	if err := chromedp.Run(browserCtx); err != nil {
		allocCancel()
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	logger.Info("browser session started", zap.Bool("headless", headless))
	return &Session{
		browserCtx:  browserCtx,
		allocCancel: allocCancel,
		logger:      logger,
	}, nil
}

// run executes actions against the session tab under the given timeout,
// propagating cancellation from the caller's context.
func (s *Session) run(ctx context.Context, timeout time.Duration, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithTimeout(s.browserCtx, timeout)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()
	return chromedp.Run(runCtx, actions...)
}

// Navigate loads the given URL, giving up after timeout.
func (s *Session) Navigate(ctx context.Context, url string, timeout time.Duration) error {
	return s.run(ctx, timeout, chromedp.Navigate(url))
}

// WaitVisible blocks until selector matches a visible element or the timeout
// elapses.
func (s *Session) WaitVisible(ctx context.Context, selector string, timeout time.Duration) error {
	return s.run(ctx, timeout, chromedp.WaitVisible(selector, chromedp.ByQuery))
}

// AnchorHrefs returns the href of every element matching selector, in
// document order.
func (s *Session) AnchorHrefs(ctx context.Context, selector string) ([]string, error) {
	var nodes []*cdp.Node
	// AtLeast(0) so an absent selector yields an empty result instead of
	// blocking until the timeout.
	err := s.run(ctx, queryTimeout,
		chromedp.Nodes(selector, &nodes, chromedp.ByQueryAll, chromedp.AtLeast(0)),
	)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", selector, err)
	}

	hrefs := make([]string, 0, len(nodes))
	for _, node := range nodes {
		if href := node.AttributeValue("href"); href != "" {
			hrefs = append(hrefs, href)
		}
	}
	return hrefs, nil
}

// PageContent returns the full rendered markup of the current page.
func (s *Session) PageContent(ctx context.Context) (string, error) {
	var html string
	if err := s.run(ctx, queryTimeout, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("fetch page content: %w", err)
	}
	return html, nil
}

// Close tears the browser down.
func (s *Session) Close() error {
	err := chromedp.Cancel(s.browserCtx)
	s.allocCancel()
	if err != nil {
		return fmt.Errorf("close browser: %w", err)
	}
	s.logger.Info("browser session closed")
	return nil
}
