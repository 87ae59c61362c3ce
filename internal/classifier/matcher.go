package classifier

import (
	"strings"

	"github.com/Tresor26/MOMO-Dashboard/internal/models"
)

// NormalizeBody prepares a raw message body for matching: internal newlines
// become single spaces and leading/trailing whitespace is removed.
func NormalizeBody(body string) string {
	return strings.ReplaceAll(strings.TrimSpace(body), "\n", " ")
}

// MatchResult carries the winning (category, pattern) pair for a message
// body together with its capture groups.
type MatchResult struct {
	Category models.Category
	Pattern  *Pattern
	// submatches holds the full regexp submatch slice; index 0 is the
	// whole match, subsequent entries line up with the pattern's groups.
	submatches []string
}

// Match walks the registry in priority order and returns the first
// (category, pattern) pair whose pattern matches the normalized body.
// The search is case-insensitive and unanchored. A false second return
// means no pattern in any category matched; that is a normal outcome,
// not an error.
func (r *Registry) Match(body string) (MatchResult, bool) {
	for _, entry := range r.entries {
		for _, pattern := range entry.Patterns {
			submatches := pattern.re.FindStringSubmatch(body)
			if submatches == nil {
				continue
			}
			return MatchResult{
				Category:   entry.Category,
				Pattern:    pattern,
				submatches: submatches,
			}, true
		}
	}
	return MatchResult{}, false
}
