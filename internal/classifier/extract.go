package classifier

import (
	"regexp"

	"github.com/shopspring/decimal"
)

var (
	// phonePattern recognizes Rwandan phone-number shapes. The alternatives
	// are tried in order at each scan position: +250-prefixed 9-digit number
	// first, then a bare 10-digit number, then a bare 9-digit number.
	// First-alternative-wins semantics are part of the extraction contract;
	// a longest-match rewrite would change which token wins on ambiguous
	// digit runs.
	phonePattern = regexp.MustCompile(`(\+?250\d{9}|\d{10}|\d{9})`)

	balancePattern = regexp.MustCompile(`(?i)(?:new balance|NEW BALANCE|balance)[:\s]+(\d+(?:,\d+)*)\s+RWF`)
	feePattern     = regexp.MustCompile(`(?i)(?:Fee was|fee)[:\s]+(\d+(?:,\d+)*)\s+RWF`)
)

// ExtractPhone finds the first phone-number-shaped token anywhere in the
// body, independent of which pattern matched. Returns "" when none is found.
func ExtractPhone(body string) string {
	return phonePattern.FindString(body)
}

// ExtractBalance scans the body for a "balance ... RWF" token and returns
// the amount, or nil when the message carries no balance.
func ExtractBalance(body string) *decimal.Decimal {
	return extractAmountAfter(balancePattern, body)
}

// ExtractFee scans the body for a "fee ... RWF" token and returns the
// amount, or nil when the message carries no fee.
func ExtractFee(body string) *decimal.Decimal {
	return extractAmountAfter(feePattern, body)
}

func extractAmountAfter(re *regexp.Regexp, body string) *decimal.Decimal {
	submatches := re.FindStringSubmatch(body)
	if submatches == nil {
		return nil
	}
	amount := CleanAmount(submatches[1])
	return &amount
}
