package classifier

import (
	"github.com/Tresor26/MOMO-Dashboard/internal/logging"
	"github.com/Tresor26/MOMO-Dashboard/internal/models"
)

// Classifier turns a raw message body into a classified transaction record.
// It is a pure function of its input: no state is carried between calls and
// Classify never returns an error for any textual input.
type Classifier struct {
	registry *Registry
	log      logging.Logger
}

// New creates a Classifier over the given registry. A nil registry uses the
// default pattern table.
func New(registry *Registry, logger logging.Logger) *Classifier {
	if registry == nil {
		registry = NewRegistry()
	}
	if logger == nil {
		logger = logging.NopLogger{}
	}
	return &Classifier{registry: registry, log: logger}
}

// Classify matches the body against the pattern registry and, on success,
// builds the full record: amount and counterparty from the capture groups,
// direction from the per-category rules, and optional balance/fee from
// their own scans over the body. The second return is false when no pattern
// in any category matched; an unmatched message yields no partial record.
func (c *Classifier) Classify(body string) (models.ClassifiedRecord, bool) {
	normalized := NormalizeBody(body)

	match, ok := c.registry.Match(normalized)
	if !ok {
		return models.ClassifiedRecord{}, false
	}

	sender, receiver := ResolveDirection(match.Category, match.NameToken(), normalized)

	record := models.ClassifiedRecord{
		Category:    match.Category,
		Amount:      CleanAmount(match.AmountToken()),
		Sender:      sender,
		Receiver:    receiver,
		RawBody:     normalized,
		Balance:     ExtractBalance(normalized),
		Fee:         ExtractFee(normalized),
		Description: describe(sender, receiver),
	}

	c.log.Debug("Message classified",
		logging.Field{Key: logging.FieldCategory, Value: string(record.Category)},
		logging.Field{Key: logging.FieldAmount, Value: record.Amount.String()},
	)

	return record, true
}

// describe derives the human-readable description from the resolved
// parties. It is empty when either party is absent.
func describe(sender, receiver string) string {
	switch {
	case sender == "" || receiver == "":
		return ""
	case sender == models.PartyYou:
		return "To " + receiver
	case receiver == models.PartyYou:
		return "From " + sender
	default:
		return "From " + sender + " to " + receiver
	}
}
