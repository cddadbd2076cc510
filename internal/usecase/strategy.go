package usecase

import (
	"strings"

	"github.com/user/profile-resolver/internal/entity"
)

// StrategyGenerator builds the ordered list of candidate queries for one
// subject, highest confidence first.
type StrategyGenerator struct {
	siteFilter  string
	maxQueryLen int
}

// NewStrategyGenerator creates a generator restricting results to the given
// site path (e.g. "linkedin.com/in") and clamping queries to maxQueryLen runes.
func NewStrategyGenerator(siteFilter string, maxQueryLen int) *StrategyGenerator {
	return &StrategyGenerator{
		siteFilter:  siteFilter,
		maxQueryLen: maxQueryLen,
	}
}

// Generate returns the strategies for a subject in descending confidence
// order. Tiers whose fields are absent are skipped; the name-only tier is
// always present. Every query is already clamped to the length limit.
func (g *StrategyGenerator) Generate(subject entity.Subject) []entity.SearchStrategy {
	var strategies []entity.SearchStrategy

	if subject.Title != "" && subject.Company != "" {
		strategies = append(strategies, entity.SearchStrategy{
			Query:       g.query(subject.Name, subject.Title, subject.Company),
			Description: "Name + Title + Company",
			Confidence:  entity.ConfidenceNameTitleCompany,
		})
	}
	if subject.Company != "" {
		strategies = append(strategies, entity.SearchStrategy{
			Query:       g.query(subject.Name, subject.Company),
			Description: "Name + Company",
			Confidence:  entity.ConfidenceNameCompany,
		})
	}
	if subject.Title != "" {
		strategies = append(strategies, entity.SearchStrategy{
			Query:       g.query(subject.Name, subject.Title),
			Description: "Name + Title",
			Confidence:  entity.ConfidenceNameTitle,
		})
	}
	strategies = append(strategies, entity.SearchStrategy{
		Query:       g.query(subject.Name),
		Description: "Name only",
		Confidence:  entity.ConfidenceNameOnly,
	})

	for i := range strategies {
		strategies[i].Query = g.clamp(strategies[i], subject)
	}
	return strategies
}

// query joins quoted field values behind the site directive. Quoting gives
// the values exact-phrase semantics on the search provider.
func (g *StrategyGenerator) query(fields ...string) string {
	var b strings.Builder
	b.WriteString("site:" + g.siteFilter)
	for _, f := range fields {
		b.WriteString(` "` + f + `"`)
	}
	return b.String()
}

// clamp rewrites an over-long query so search providers accept it. Company
// strategies fall back to a short name+company reconstruction first; anything
// still over the limit is cut with a truncation marker. A clamped query is
// still executed, never rejected.
func (g *StrategyGenerator) clamp(strategy entity.SearchStrategy, subject entity.Subject) string {
	q := strategy.Query
	if len([]rune(q)) <= g.maxQueryLen {
		return q
	}

	if strategy.Confidence == entity.ConfidenceNameTitleCompany ||
		strategy.Confidence == entity.ConfidenceNameCompany {
		base := g.query(subject.Name, subject.Company)
		if len([]rune(base)) <= g.maxQueryLen {
			return base
		}
	}

	return string([]rune(q)[:g.maxQueryLen-3]) + "..."
}
