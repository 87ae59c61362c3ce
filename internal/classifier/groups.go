package classifier

import "regexp"

// amountShape matches a token made solely of digits with optional comma
// thousands separators. A captured "name" group whose text has this shape
// is really a phone number or account reference, never a counterparty, and
// is treated as absent.
var amountShape = regexp.MustCompile(`^\d+(?:,\d+)*$`)

// AmountToken returns the text of the pattern's amount group, or "" when
// the pattern captured no amount. The caller resolves "" to a zero amount.
func (m MatchResult) AmountToken() string {
	return m.group(groupAmount)
}

// NameToken returns the text of the pattern's name group, or "" when the
// pattern captured no usable counterparty. A group consisting solely of
// digits and separators is rejected here; the directionality rules then
// fall back to the category's default label.
func (m MatchResult) NameToken() string {
	name := m.group(groupName)
	if name == "" || amountShape.MatchString(name) {
		return ""
	}
	return name
}

// group returns the text captured by the named group, or "" when the
// pattern has no such group or it did not participate in the match.
func (m MatchResult) group(name string) string {
	if m.Pattern == nil {
		return ""
	}
	idx := m.Pattern.re.SubexpIndex(name)
	if idx < 0 || idx >= len(m.submatches) {
		return ""
	}
	return m.submatches[idx]
}
