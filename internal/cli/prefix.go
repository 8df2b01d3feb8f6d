// Package cli provides CLI infrastructure for plantpal.
package cli

import (
	"fmt"
	"strings"
)

// Match finds a unique choice from a prefix, such as a --status or --format value.
// kind names the value in error messages.
func Match(kind, prefix string, choices []string) (string, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))

	// First check for exact match
	for _, c := range choices {
		if strings.ToLower(c) == prefix {
			return c, nil
		}
	}

	// Check for prefix match
	var matches []string
	for _, c := range choices {
		if strings.HasPrefix(strings.ToLower(c), prefix) {
			matches = append(matches, c)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("unknown %s %q (choose from %s)", kind, prefix, strings.Join(choices, ", "))
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous %s %q matches: %s", kind, prefix, strings.Join(matches, ", "))
	}
}
