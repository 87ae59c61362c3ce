package classifier

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	parentheticalPattern = regexp.MustCompile(`\s*\([^)]*\)`)
	trailingDigitsRun    = regexp.MustCompile(`(?:\s*\d+)+\s*$`)
)

// CleanAmount converts a raw numeric token into a decimal value. Thousands
// separators are stripped before parsing. An empty or malformed token yields
// zero rather than an error; the capture groups feeding this function only
// ever contain digit sequences with optional comma separators.
func CleanAmount(token string) decimal.Decimal {
	if token == "" {
		return decimal.Zero
	}
	cleaned := strings.ReplaceAll(token, ",", "")
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// NormalizeName cleans a raw counterparty token: parenthetical asides are
// removed anywhere in the token, then any trailing run of digit groups with
// surrounding whitespace, then the result is trimmed. Returns "" for an
// absent token. Applying NormalizeName twice yields the same result as once.
func NormalizeName(token string) string {
	if token == "" {
		return ""
	}
	name := parentheticalPattern.ReplaceAllString(token, "")
	name = strings.TrimSpace(name)
	name = trailingDigitsRun.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}
