package fsdebug

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

var unsafeChars = regexp.MustCompile(`[^\w\s-]`)

// ArtifactRepoImpl dumps the raw markup of unresolved result pages to disk
// for manual inspection.
type ArtifactRepoImpl struct {
	dir    string
	logger *zap.Logger
}

// NewArtifactRepo creates a dump sink rooted at dir.
func NewArtifactRepo(dir string, logger *zap.Logger) *ArtifactRepoImpl {
	return &ArtifactRepoImpl{dir: dir, logger: logger}
}

// SaveHTML writes the markup under a sanitized, name-derived filename.
func (r *ArtifactRepoImpl) SaveHTML(subjectName, html string) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("create debug dir %s: %w", r.dir, err)
	}

	safe := unsafeChars.ReplaceAllString(subjectName, "")
	safe = strings.ReplaceAll(strings.TrimSpace(safe), " ", "_")
	path := filepath.Join(r.dir, "debug_"+safe+".html")

	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write debug artifact %s: %w", path, err)
	}
	r.logger.Info("saved debug artifact", zap.String("path", path))
	return nil
}
