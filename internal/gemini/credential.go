package gemini

import (
	"errors"
	"fmt"
	"strings"
)

const (
	apiKeyPrefix = "AIza"
	apiKeyLength = 39
)

// ErrNoCredential means no API key was provided at all, as opposed to one
// with a bad shape.
var ErrNoCredential = errors.New("no Gemini API key provided")

// ValidateAPIKey checks the syntactic shape of a Gemini API key and returns
// the trimmed key. It cannot tell whether the key is actually authorized;
// the rejection reason is for operator logs only and must never reach end
// users.
func ValidateAPIKey(raw string) (string, error) {
	key := strings.TrimSpace(raw)
	if key == "" {
		return "", ErrNoCredential
	}
	if !strings.HasPrefix(key, apiKeyPrefix) {
		return "", fmt.Errorf("API key must start with %q", apiKeyPrefix)
	}
	if len(key) != apiKeyLength {
		return "", fmt.Errorf("API key must be %d characters, got %d", apiKeyLength, len(key))
	}
	for _, r := range key {
		if r == '-' || r == '_' {
			continue
		}
		if !isAlphanumeric(r) {
			return "", fmt.Errorf("API key contains invalid character %q", r)
		}
	}
	return key, nil
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
