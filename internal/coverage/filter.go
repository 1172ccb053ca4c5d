package coverage

import (
	"path/filepath"
	"strings"

	"qat/internal/domain"
)

// Filter keeps the files whose name matches pattern. An empty pattern keeps
// everything. Supports patterns like "*Governance.sol" or "*Payment*"; a
// pattern without wildcards matches as a substring.
func Filter(files []domain.FileCoverage, pattern string) []domain.FileCoverage {
	if pattern == "" {
		return files
	}

	var filtered []domain.FileCoverage
	for _, fc := range files {
		if MatchName(pattern, fc.Path) {
			filtered = append(filtered, fc)
		}
	}
	return filtered
}

// MatchName reports whether the base name of path matches pattern
func MatchName(pattern, path string) bool {
	name := filepath.Base(filepath.FromSlash(path))

	// Try filepath.Match first (supports * and ? wildcards)
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// Flexible match for "*Payment*": every literal part must appear, in order
	if strings.Contains(pattern, "?") {
		return false
	}
	rest := name
	found := false
	for _, part := range strings.Split(pattern, "*") {
		if part == "" {
			continue
		}
		i := strings.Index(rest, part)
		if i < 0 {
			return false
		}
		rest = rest[i+len(part):]
		found = true
	}
	return found
}
