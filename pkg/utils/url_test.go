package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeProfileURL(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already canonical", "https://www.linkedin.com/in/janedoe", "https://www.linkedin.com/in/janedoe"},
		{"query string", "https://www.linkedin.com/in/janedoe?miniProfile=abc", "https://www.linkedin.com/in/janedoe"},
		{"fragment", "https://www.linkedin.com/in/janedoe#about", "https://www.linkedin.com/in/janedoe"},
		{"trailing segments", "https://www.linkedin.com/in/janedoe/details/experience/", "https://www.linkedin.com/in/janedoe"},
		{"http scheme", "http://linkedin.com/in/janedoe", "http://linkedin.com/in/janedoe"},
		{"country subdomain", "https://uk.linkedin.com/in/janedoe?trk=x", "https://uk.linkedin.com/in/janedoe"},
		{"not a profile url", "https://example.com/about", "https://example.com/about"},
		{"garbage unchanged", "not a url at all", "not a url at all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NormalizeProfileURL(tt.in))
		})
	}
}

func TestHashURL(t *testing.T) {
	t.Parallel()
	a := HashURL("https://www.linkedin.com/in/janedoe")
	b := HashURL("https://www.linkedin.com/in/janedoe")
	c := HashURL("https://www.linkedin.com/in/other")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}
