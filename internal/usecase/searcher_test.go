package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/user/profile-resolver/internal/entity"
	"github.com/user/profile-resolver/internal/repository"
)

func newTestSearcher() *Searcher {
	return NewSearcher("https://duckduckgo.com", time.Second, 10*time.Millisecond, 0, zap.NewNop())
}

func TestSearcher_EncodesQueryIntoURL(t *testing.T) {
	t.Parallel()
	s := newTestSearcher()
	session := &fakeSession{results: map[string]string{
		`site:linkedin.com/in "Jane Doe"`: "https://www.linkedin.com/in/janedoe",
	}}

	err := s.Search(context.Background(), session, entity.SearchStrategy{
		Query:      `site:linkedin.com/in "Jane Doe"`,
		Confidence: entity.ConfidenceNameOnly,
	})

	require.NoError(t, err)
	require.Len(t, session.navigated, 1)
	assert.Equal(t,
		"https://duckduckgo.com/?q=site%3Alinkedin.com%2Fin+%22Jane+Doe%22&ia=web",
		session.navigated[0],
	)
}

func TestSearcher_SoftFailureWhenNoMarkers(t *testing.T) {
	t.Parallel()
	s := newTestSearcher()
	session := &fakeSession{} // no results for any query

	err := s.Search(context.Background(), session, entity.SearchStrategy{Query: "anything"})
	assert.ErrorIs(t, err, repository.ErrNoResults)
}

func TestSearcher_NavigationErrorIsSoft(t *testing.T) {
	t.Parallel()
	s := newTestSearcher()
	session := &fakeSession{navErr: errors.New("net::ERR_NAME_NOT_RESOLVED")}

	err := s.Search(context.Background(), session, entity.SearchStrategy{Query: "anything"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrNoResults)
}

func TestSearcher_CancelledContext(t *testing.T) {
	t.Parallel()
	s := NewSearcher("https://duckduckgo.com", time.Second, 10*time.Millisecond, time.Second, zap.NewNop())
	session := &fakeSession{results: map[string]string{"q": "https://www.linkedin.com/in/x"}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Search(ctx, session, entity.SearchStrategy{Query: "q"})
	assert.ErrorIs(t, err, context.Canceled)
}
