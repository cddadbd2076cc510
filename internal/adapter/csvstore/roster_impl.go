package csvstore

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/user/profile-resolver/internal/entity"
)

// Roster column headers as exported by the registration system.
const (
	colName    = "Name"
	colTitle   = "Job Title"
	colCompany = "Company"
)

// LoadRoster reads the input roster CSV into subjects, filtering out rows
// without a name. A missing or unreadable file is the one fatal setup
// failure of the whole run.
func LoadRoster(path string, logger *zap.Logger) ([]entity.Subject, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read roster header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, h := range header {
		columns[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	if _, ok := columns[colName]; !ok {
		return nil, fmt.Errorf("roster %s has no %q column", path, colName)
	}
	logger.Info("roster headers detected", zap.Strings("headers", header))

	var subjects []entity.Subject
	skipped := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read roster row: %w", err)
		}

		subject := entity.Subject{
			Name:    field(row, columns, colName),
			Title:   field(row, columns, colTitle),
			Company: field(row, columns, colCompany),
		}
		if !subject.HasName() {
			skipped++
			continue
		}
		subjects = append(subjects, subject)
	}

	logger.Info("roster loaded",
		zap.String("path", path),
		zap.Int("subjects", len(subjects)),
		zap.Int("skipped_blank_names", skipped),
	)
	return subjects, nil
}

func field(row []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
