package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeenRepo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewSeenRepo()

	has, err := repo.Has(ctx, "https://www.linkedin.com/in/janedoe")
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, repo.Add(ctx, "https://www.linkedin.com/in/janedoe"))

	has, err = repo.Has(ctx, "https://www.linkedin.com/in/janedoe")
	require.NoError(t, err)
	assert.True(t, has)
}

func TestSeenRepo_Preload(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewSeenRepo("https://www.linkedin.com/in/old", "https://www.linkedin.com/in/older")

	has, err := repo.Has(ctx, "https://www.linkedin.com/in/old")
	require.NoError(t, err)
	assert.True(t, has)

	has, err = repo.Has(ctx, "https://www.linkedin.com/in/new")
	require.NoError(t, err)
	assert.False(t, has)
}
