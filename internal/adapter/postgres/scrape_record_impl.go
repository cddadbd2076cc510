package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/profile-resolver/internal/entity"
)

// ScrapeRecordRepoImpl provides a concrete implementation for the
// RecordRepository interface using PostgreSQL. The unique index on
// profile_link backs the one-record-per-link invariant even across runs.
type ScrapeRecordRepoImpl struct {
	db *pgxpool.Pool
}

// NewScrapeRecordRepo creates a new instance of ScrapeRecordRepoImpl.
func NewScrapeRecordRepo(db *pgxpool.Pool) *ScrapeRecordRepoImpl {
	return &ScrapeRecordRepoImpl{db: db}
}

// Migrate creates the scrape_records table if it does not exist yet.
func (r *ScrapeRecordRepoImpl) Migrate(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS scrape_records (
			id BIGSERIAL PRIMARY KEY,
			query_name TEXT NOT NULL,
			query_title TEXT NOT NULL DEFAULT '',
			query_company TEXT NOT NULL DEFAULT '',
			profile_link TEXT NOT NULL UNIQUE,
			confidence_score INT NOT NULL,
			resolved_at TIMESTAMPTZ NOT NULL
		);
	`
	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("migrate scrape_records: %w", err)
	}
	return nil
}

// Save stores one resolved record. Conflicting profile links are dropped
// silently; the resolver's seen-set check makes that a defensive guard only.
func (r *ScrapeRecordRepoImpl) Save(ctx context.Context, record *entity.ScrapeRecord) error {
	query := `
		INSERT INTO scrape_records (query_name, query_title, query_company, profile_link, confidence_score, resolved_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (profile_link) DO NOTHING;
	`
	_, err := r.db.Exec(ctx, query,
		record.QueryName,
		record.QueryTitle,
		record.QueryCompany,
		record.ProfileLink,
		record.ConfidenceScore,
		record.ResolvedAt,
	)
	if err != nil {
		return fmt.Errorf("insert scrape record for %s: %w", record.QueryName, err)
	}
	return nil
}

// SeenLinks returns every profile link already recorded, used to preload the
// seen-set when a run resumes against an existing table.
func (r *ScrapeRecordRepoImpl) SeenLinks(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT profile_link FROM scrape_records;`)
	if err != nil {
		return nil, fmt.Errorf("load seen links: %w", err)
	}
	defer rows.Close()

	var links []string
	for rows.Next() {
		var link string
		if err := rows.Scan(&link); err != nil {
			return nil, fmt.Errorf("scan seen link: %w", err)
		}
		links = append(links, link)
	}
	return links, rows.Err()
}
