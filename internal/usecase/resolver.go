package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/user/profile-resolver/internal/entity"
	"github.com/user/profile-resolver/internal/repository"
	"github.com/user/profile-resolver/pkg/metrics"
	"github.com/user/profile-resolver/pkg/utils"
)

// Outcome is the terminal state of one subject's resolution attempt.
type Outcome string

const (
	OutcomeResolved   Outcome = "resolved"
	OutcomeUnresolved Outcome = "unresolved"
	OutcomeDuplicate  Outcome = "duplicate"
	OutcomeSkipped    Outcome = "skipped"
	OutcomeFailed     Outcome = "failed"
)

// RunSummary aggregates per-subject outcomes for the final report.
type RunSummary struct {
	Subjects   int
	Resolved   int
	Duplicates int
	Unresolved int
	Skipped    int
	Failed     int
}

// Resolver drives the per-subject loop: generate strategies, search, extract,
// normalize, dedup, persist. Subjects are processed strictly in input order
// over a single shared session, and one subject's failure never aborts the run.
type Resolver struct {
	session    repository.SearchSession
	records    repository.RecordRepository
	seen       repository.SeenRepository
	artifacts  repository.ArtifactRepository // optional, may be nil
	strategies *StrategyGenerator
	searcher   *Searcher
	extractor  *Extractor
	limiter    *rate.Limiter
	logger     *zap.Logger
}

// NewResolver wires the resolution pipeline. subjectDelay paces consecutive
// subjects to stay under the provider's radar; zero disables pacing.
func NewResolver(
	session repository.SearchSession,
	records repository.RecordRepository,
	seen repository.SeenRepository,
	artifacts repository.ArtifactRepository,
	strategies *StrategyGenerator,
	searcher *Searcher,
	extractor *Extractor,
	subjectDelay time.Duration,
	logger *zap.Logger,
) *Resolver {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if subjectDelay > 0 {
		limiter = rate.NewLimiter(rate.Every(subjectDelay), 1)
	}
	return &Resolver{
		session:    session,
		records:    records,
		seen:       seen,
		artifacts:  artifacts,
		strategies: strategies,
		searcher:   searcher,
		extractor:  extractor,
		limiter:    limiter,
		logger:     logger,
	}
}

// Run processes every subject in order and returns the aggregate summary.
// Errors inside one subject are logged and absorbed; Run itself only stops
// early when the context is cancelled.
func (r *Resolver) Run(ctx context.Context, subjects []entity.Subject) RunSummary {
	summary := RunSummary{Subjects: len(subjects)}

	for i, subject := range subjects {
		if err := r.limiter.Wait(ctx); err != nil {
			r.logger.Warn("run cancelled", zap.Error(err))
			return summary
		}

		r.logger.Info("processing subject",
			zap.Int("index", i+1),
			zap.Int("total", len(subjects)),
			zap.String("name", subject.Name),
		)

		outcome, err := r.safeResolve(ctx, subject)
		if err != nil {
			// Subject-level failures are isolated: log and move on.
			r.logger.Error("subject processing failed",
				zap.String("name", subject.Name),
				zap.Error(err),
			)
			outcome = OutcomeFailed
		}
		metrics.SubjectsTotal.WithLabelValues(string(outcome)).Inc()

		switch outcome {
		case OutcomeResolved:
			summary.Resolved++
		case OutcomeDuplicate:
			summary.Duplicates++
		case OutcomeUnresolved:
			summary.Unresolved++
		case OutcomeSkipped:
			summary.Skipped++
		case OutcomeFailed:
			summary.Failed++
		}
	}

	return summary
}

// safeResolve shields the run loop from panics in a collaborator; a crashed
// browser tab must not take the remaining subjects down with it.
func (r *Resolver) safeResolve(ctx context.Context, subject entity.Subject) (outcome Outcome, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			outcome = OutcomeFailed
			err = fmt.Errorf("panic while processing subject: %v", rec)
		}
	}()
	return r.resolveSubject(ctx, subject)
}

// resolveSubject walks the subject's strategies in descending confidence
// order and persists the first novel profile link found.
func (r *Resolver) resolveSubject(ctx context.Context, subject entity.Subject) (Outcome, error) {
	if !subject.HasName() {
		r.logger.Warn("skipping subject with missing name")
		return OutcomeSkipped, nil
	}

	strategies := r.strategies.Generate(subject)

	for i, strategy := range strategies {
		r.logger.Debug("trying strategy",
			zap.Int("attempt", i+1),
			zap.Int("strategies", len(strategies)),
			zap.String("description", strategy.Description),
			zap.String("query", strategy.Query),
		)

		rawURL, ok := r.attempt(ctx, strategy)
		if !ok {
			continue
		}

		normalized := utils.NormalizeProfileURL(rawURL)
		return r.persist(ctx, subject, strategy, normalized)
	}

	r.logger.Info("no profile found", zap.String("name", subject.Name))
	r.dumpArtifact(ctx, subject)
	return OutcomeUnresolved, nil
}

// attempt runs one strategy end to end: search, then extract. Both failure
// modes are soft and advance the cascade.
func (r *Resolver) attempt(ctx context.Context, strategy entity.SearchStrategy) (string, bool) {
	start := time.Now()
	defer func() {
		tier := fmt.Sprintf("%d", strategy.Confidence)
		metrics.StrategyDuration.WithLabelValues(tier).Observe(time.Since(start).Seconds())
	}()

	if err := r.searcher.Search(ctx, r.session, strategy); err != nil {
		if errors.Is(err, repository.ErrNoResults) {
			metrics.SearchesTotal.WithLabelValues("no_results").Inc()
			r.logger.Debug("no results for strategy", zap.String("description", strategy.Description))
		} else {
			metrics.SearchesTotal.WithLabelValues("error").Inc()
			r.logger.Warn("search failed",
				zap.String("description", strategy.Description),
				zap.Error(err),
			)
		}
		return "", false
	}
	metrics.SearchesTotal.WithLabelValues("rendered").Inc()

	rawURL, err := r.extractor.Extract(ctx, r.session)
	if err != nil {
		r.logger.Debug("no profile link extracted", zap.String("description", strategy.Description))
		return "", false
	}
	return rawURL, true
}

// persist writes the record unless the link was already seen this run.
func (r *Resolver) persist(ctx context.Context, subject entity.Subject, strategy entity.SearchStrategy, normalized string) (Outcome, error) {
	seen, err := r.seen.Has(ctx, normalized)
	if err != nil {
		return OutcomeFailed, fmt.Errorf("seen-set lookup for %s: %w", normalized, err)
	}
	if seen {
		r.logger.Info("profile already recorded",
			zap.String("name", subject.Name),
			zap.String("profile", normalized),
		)
		return OutcomeDuplicate, nil
	}

	record := &entity.ScrapeRecord{
		QueryName:       subject.Name,
		QueryTitle:      subject.Title,
		QueryCompany:    subject.Company,
		ProfileLink:     normalized,
		ConfidenceScore: strategy.Confidence,
		ResolvedAt:      time.Now(),
	}
	if err := r.records.Save(ctx, record); err != nil {
		return OutcomeFailed, fmt.Errorf("save record for %s: %w", subject.Name, err)
	}
	if err := r.seen.Add(ctx, normalized); err != nil {
		// The record is durable; a stale seen-set only risks a duplicate later.
		r.logger.Warn("failed to mark profile as seen",
			zap.String("profile", normalized),
			zap.Error(err),
		)
	}

	r.logger.Info("profile resolved",
		zap.String("name", subject.Name),
		zap.String("profile", normalized),
		zap.String("strategy", strategy.Description),
		zap.Int("confidence", strategy.Confidence),
	)
	return OutcomeResolved, nil
}

// dumpArtifact hands the page markup to the diagnostic collaborator, when one
// is configured. Never fatal.
func (r *Resolver) dumpArtifact(ctx context.Context, subject entity.Subject) {
	if r.artifacts == nil {
		return
	}
	html, err := r.session.PageContent(ctx)
	if err != nil {
		r.logger.Debug("could not fetch page for debug artifact", zap.Error(err))
		return
	}
	if err := r.artifacts.SaveHTML(subject.Name, html); err != nil {
		r.logger.Warn("could not save debug artifact",
			zap.String("name", subject.Name),
			zap.Error(err),
		)
	}
}
