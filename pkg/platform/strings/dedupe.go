// Package strings provides slice normalization helpers shared across
// contexts, mainly for skill lists.
package strings

import (
	"strings"
)

// DedupeAndTrimLower lowercases and trims each element, dropping duplicates
// and empty entries. First-occurrence order is preserved. Used for values
// compared case-insensitively (skill names).
func DedupeAndTrimLower(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		n := strings.ToLower(strings.TrimSpace(v))
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		result = append(result, n)
	}
	return result
}
