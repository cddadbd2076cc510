package usecase

import (
	"context"
	"net/url"
	"time"

	"github.com/user/profile-resolver/internal/entity"
	"github.com/user/profile-resolver/pkg/metrics"
)

func init() {
	// Usecases bump counters unconditionally; tests need them registered.
	metrics.Init()
}

// fakeSession scripts the search backend: results maps a full query string to
// the href its result page serves. Queries without an entry render nothing.
type fakeSession struct {
	results    map[string]string
	content    string
	contentErr error
	navErr     error
	anchorsErr error

	navigated []string
	lastQuery string
	closed    bool
}

func (f *fakeSession) Navigate(_ context.Context, rawURL string, _ time.Duration) error {
	if f.navErr != nil {
		return f.navErr
	}
	f.navigated = append(f.navigated, rawURL)
	if u, err := url.Parse(rawURL); err == nil {
		f.lastQuery = u.Query().Get("q")
	}
	return nil
}

func (f *fakeSession) WaitVisible(_ context.Context, _ string, _ time.Duration) error {
	if f.currentHref() != "" {
		return nil
	}
	return context.DeadlineExceeded
}

func (f *fakeSession) AnchorHrefs(_ context.Context, _ string) ([]string, error) {
	if f.anchorsErr != nil {
		return nil, f.anchorsErr
	}
	if href := f.currentHref(); href != "" {
		return []string{href}, nil
	}
	return nil, nil
}

func (f *fakeSession) PageContent(_ context.Context) (string, error) {
	return f.content, f.contentErr
}

func (f *fakeSession) Close() error {
	f.closed = true
	return nil
}

func (f *fakeSession) currentHref() string {
	return f.results[f.lastQuery]
}

// recordStore collects saved records in memory.
type recordStore struct {
	records []entity.ScrapeRecord
	saveErr error
}

func (s *recordStore) Save(_ context.Context, record *entity.ScrapeRecord) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.records = append(s.records, *record)
	return nil
}

// artifactSink captures debug dumps.
type artifactSink struct {
	names []string
	htmls []string
	err   error
}

func (a *artifactSink) SaveHTML(subjectName, html string) error {
	if a.err != nil {
		return a.err
	}
	a.names = append(a.names, subjectName)
	a.htmls = append(a.htmls, html)
	return nil
}
