package csvstore

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/user/profile-resolver/internal/entity"
)

var outputHeader = []string{"query_name", "query_title", "query_company", "profile_link", "confidence_score"}

// RecordRepoImpl provides a concrete implementation for the RecordRepository
// interface backed by an append-only CSV file. Every Save is flushed and
// synced immediately so a crash never loses completed records.
type RecordRepoImpl struct {
	file   *os.File
	writer *csv.Writer
	path   string
	logger *zap.Logger
}

// NewRecordRepo truncates (or creates) the output file and writes the header
// row. The caller owns Close.
func NewRecordRepo(path string, logger *zap.Logger) (*RecordRepoImpl, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(outputHeader); err != nil {
		f.Close()
		return nil, fmt.Errorf("write output header: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return nil, fmt.Errorf("flush output header: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return nil, fmt.Errorf("sync output header: %w", err)
	}

	logger.Info("output store ready", zap.String("path", path))
	return &RecordRepoImpl{file: f, writer: w, path: path, logger: logger}, nil
}

// Save appends one record and makes it durable before returning.
func (r *RecordRepoImpl) Save(_ context.Context, record *entity.ScrapeRecord) error {
	row := []string{
		record.QueryName,
		record.QueryTitle,
		record.QueryCompany,
		record.ProfileLink,
		strconv.Itoa(record.ConfidenceScore),
	}
	if err := r.writer.Write(row); err != nil {
		return fmt.Errorf("write record for %s: %w", record.QueryName, err)
	}
	r.writer.Flush()
	if err := r.writer.Error(); err != nil {
		return fmt.Errorf("flush record for %s: %w", record.QueryName, err)
	}
	if err := r.file.Sync(); err != nil {
		return fmt.Errorf("sync output: %w", err)
	}
	r.logger.Debug("record persisted",
		zap.String("name", record.QueryName),
		zap.String("profile_link", record.ProfileLink),
	)
	return nil
}

// Path returns the output file location for the final summary.
func (r *RecordRepoImpl) Path() string {
	return r.path
}

// Close flushes and closes the output file.
func (r *RecordRepoImpl) Close() error {
	r.writer.Flush()
	if err := r.writer.Error(); err != nil {
		r.file.Close()
		return err
	}
	return r.file.Close()
}
