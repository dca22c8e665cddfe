// Package shared provides common utility functions used across multiple
// packages in the repomap codebase.
package shared

import (
	"fmt"
	"regexp"
	"strings"
)

var nameSeparators = regexp.MustCompile(`[-_.]+`)

// NormalizeProjectName lowercases a Python project name and collapses
// runs of hyphens, underscores and dots into single hyphens, following
// PEP 503 normalization. Index URLs are built from the normalized name.
func NormalizeProjectName(value string) string {
	return strings.ToLower(nameSeparators.ReplaceAllString(strings.TrimSpace(value), "-"))
}

// HTTPStatusError creates a formatted error for non-2xx HTTP responses.
func HTTPStatusError(status int, url string) error {
	return fmt.Errorf("status=%d url=%s", status, url)
}
