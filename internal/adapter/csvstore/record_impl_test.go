package csvstore

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/user/profile-resolver/internal/entity"
)

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRecordRepo_WritesHeaderAndRows(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "out.csv")

	repo, err := NewRecordRepo(path, zap.NewNop())
	require.NoError(t, err)

	err = repo.Save(context.Background(), &entity.ScrapeRecord{
		QueryName:       "Jane Doe",
		QueryTitle:      "CTO",
		QueryCompany:    "Acme",
		ProfileLink:     "https://www.linkedin.com/in/janedoe",
		ConfidenceScore: 4,
		ResolvedAt:      time.Now(),
	})
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	rows := readRows(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"query_name", "query_title", "query_company", "profile_link", "confidence_score"}, rows[0])
	assert.Equal(t, []string{"Jane Doe", "CTO", "Acme", "https://www.linkedin.com/in/janedoe", "4"}, rows[1])
}

func TestRecordRepo_RecordDurableBeforeClose(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "out.csv")

	repo, err := NewRecordRepo(path, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	require.NoError(t, repo.Save(context.Background(), &entity.ScrapeRecord{
		QueryName:       "Jane Doe",
		ProfileLink:     "https://www.linkedin.com/in/janedoe",
		ConfidenceScore: 1,
	}))

	// Read back without closing: a crash after Save must not lose the row.
	rows := readRows(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, "https://www.linkedin.com/in/janedoe", rows[1][3])
}

func TestRecordRepo_LogsPersistedRecords(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zap.DebugLevel)
	path := filepath.Join(t.TempDir(), "out.csv")

	repo, err := NewRecordRepo(path, zap.New(core))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	require.NoError(t, repo.Save(context.Background(), &entity.ScrapeRecord{
		QueryName:   "Jane Doe",
		ProfileLink: "https://www.linkedin.com/in/janedoe",
	}))

	assert.Equal(t, 1, logs.FilterMessage("output store ready").Len())
	entries := logs.FilterMessage("record persisted").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Jane Doe", entries[0].ContextMap()["name"])
}

func TestRecordRepo_TruncatesAtRunStart(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "out.csv")

	first, err := NewRecordRepo(path, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, first.Save(context.Background(), &entity.ScrapeRecord{
		QueryName:   "Old Run",
		ProfileLink: "https://www.linkedin.com/in/old",
	}))
	require.NoError(t, first.Close())

	second, err := NewRecordRepo(path, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, second.Close())

	rows := readRows(t, path)
	assert.Len(t, rows, 1) // header only
}
