package usecase

import (
	"context"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/user/profile-resolver/internal/repository"
)

// Extractor pulls the first plausible profile link out of a rendered result
// page. Three techniques are tried in order; each is independently
// fault-tolerant, and the first hit ends the cascade. Only the first match is
// ever kept: ambiguity among multiple plausible links is not resolved.
type Extractor struct {
	marker    string
	selectors []string
	pattern   *regexp.Regexp
	logger    *zap.Logger
}

// NewExtractor creates an extractor for links carrying the given profile-path
// marker (e.g. "linkedin.com/in/").
func NewExtractor(marker string, logger *zap.Logger) *Extractor {
	return &Extractor{
		marker: marker,
		selectors: []string{
			`article[data-testid='result'] a[href*="` + marker + `"]`,
			`article a[href*="` + marker + `"]`,
			`.result a[href*="` + marker + `"]`,
			`a[href*="` + marker + `"]`,
		},
		pattern: regexp.MustCompile(`https?://(?:www\.)?` + regexp.QuoteMeta(marker) + `[^\s"'<>]+`),
		logger:  logger,
	}
}

type technique struct {
	name string
	run  func(ctx context.Context, session repository.SearchSession) (string, bool)
}

// Extract returns the first profile link found on the current page, or
// repository.ErrNoMatch when every technique misses.
func (e *Extractor) Extract(ctx context.Context, session repository.SearchSession) (string, error) {
	techniques := []technique{
		{name: "structured_query", run: e.fromSelectors},
		{name: "anchor_scan", run: e.fromAnchors},
		{name: "markup_regex", run: e.fromMarkup},
	}

	for _, t := range techniques {
		if href, ok := t.run(ctx, session); ok {
			e.logger.Debug("profile link extracted",
				zap.String("technique", t.name),
				zap.String("href", href),
			)
			return href, nil
		}
	}
	return "", repository.ErrNoMatch
}

// fromSelectors queries the known result-item selectors, most specific
// container scoping first, and returns the first matching link's target.
func (e *Extractor) fromSelectors(ctx context.Context, session repository.SearchSession) (string, bool) {
	for _, selector := range e.selectors {
		hrefs, err := session.AnchorHrefs(ctx, selector)
		if err != nil {
			e.logger.Debug("structured query failed",
				zap.String("selector", selector),
				zap.Error(err),
			)
			continue
		}
		if len(hrefs) > 0 {
			return hrefs[0], true
		}
	}
	return "", false
}

// fromAnchors scans every link element on the page for the profile marker.
func (e *Extractor) fromAnchors(ctx context.Context, session repository.SearchSession) (string, bool) {
	html, err := session.PageContent(ctx)
	if err != nil {
		e.logger.Debug("page content fetch failed", zap.Error(err))
		return "", false
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		e.logger.Debug("page parse failed", zap.Error(err))
		return "", false
	}

	var found string
	doc.Find("a").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, exists := sel.Attr("href")
		if exists && strings.Contains(href, e.marker) {
			found = href
			return false
		}
		return true
	})
	return found, found != ""
}

// fromMarkup regex-scans the raw rendered markup as a last resort.
func (e *Extractor) fromMarkup(ctx context.Context, session repository.SearchSession) (string, bool) {
	html, err := session.PageContent(ctx)
	if err != nil {
		e.logger.Debug("page content fetch failed", zap.Error(err))
		return "", false
	}
	if m := e.pattern.FindString(html); m != "" {
		return m, true
	}
	return "", false
}
