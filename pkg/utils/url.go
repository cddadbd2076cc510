package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
)

// profilePattern captures scheme, host and the /in/<slug> path segment of a
// profile URL, dropping deeper segments, query strings and fragments.
var profilePattern = regexp.MustCompile(`(https?://[^/]+/in/[^/?#]+)`)

// NormalizeProfileURL canonicalizes a raw profile link into its stable form.
// Inputs that do not look like a profile URL are returned unchanged; this is
// best-effort, not a validation step.
func NormalizeProfileURL(rawURL string) string {
	if m := profilePattern.FindStringSubmatch(rawURL); m != nil {
		return m[1]
	}
	return rawURL
}

// HashURL creates a SHA256 hash of a URL string.
// This is useful for creating consistent, safe keys for Redis.
func HashURL(rawURL string) string {
	h := sha256.New()
	h.Write([]byte(rawURL))
	return hex.EncodeToString(h.Sum(nil))
}
