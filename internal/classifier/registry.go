// Package classifier implements the classification-and-extraction engine
// that turns free-form mobile-money notification text into structured
// transaction records.
package classifier

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/Tresor26/MOMO-Dashboard/internal/models"
)

// Capture group names recognized by the matcher. A pattern tags the group
// holding the monetary amount as "amount" and the group holding the
// counterparty as "name"; unnamed groups are ignored.
const (
	groupAmount = "amount"
	groupName   = "name"
)

// Pattern is a single compiled message phrasing within a category.
type Pattern struct {
	expr string
	re   *regexp.Regexp
}

// Expr returns the pattern's source expression.
func (p *Pattern) Expr() string {
	return p.expr
}

func compilePattern(expr string) (*Pattern, error) {
	re, err := regexp.Compile(`(?i)` + expr)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", expr, err)
	}
	return &Pattern{expr: expr, re: re}, nil
}

func mustPattern(expr string) *Pattern {
	p, err := compilePattern(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// CategoryPatterns pairs a category with its ordered list of patterns.
type CategoryPatterns struct {
	Category models.Category
	Patterns []*Pattern
}

// Registry holds the category/pattern table in classification priority
// order. The order is load-bearing both across categories and within a
// category's pattern list: the first pattern that matches a message body
// decides its category. A Registry is built once and never mutated; it is
// deliberately a slice of pairs rather than a map so that iteration order
// is an explicit contract.
type Registry struct {
	entries []CategoryPatterns
}

// Entries returns the registry's (category, patterns) pairs in priority order.
func (r *Registry) Entries() []CategoryPatterns {
	return r.entries
}

// NewRegistry builds the default pattern registry covering the known
// MTN mobile-money message phrasings.
func NewRegistry() *Registry {
	return &Registry{entries: []CategoryPatterns{
		{models.CategoryIncomingMoney, []*Pattern{
			mustPattern(`You have received\s+(?P<amount>\d+(?:,\d+)*)\s+RWF from\s+(?P<name>[^(]+)`),
			mustPattern(`(?P<amount>\d+(?:,\d+)*)\s+RWF received from\s+(?P<name>[^(]+)`),
			mustPattern(`Money received[:\s]+(?P<amount>\d+(?:,\d+)*)\s+RWF from\s+(?P<name>[^(]+)`),
		}},
		{models.CategoryPaymentToCodeHolder, []*Pattern{
			mustPattern(`TxId:\s*\d+\.\s*Your payment of\s+(?P<amount>\d+(?:,\d+)*)\s+RWF to\s+(?P<name>[^0-9]+)\s*\d+`),
			mustPattern(`Payment of\s+(?P<amount>\d+(?:,\d+)*)\s+RWF to code holder\s+(?P<name>[^(]+)`),
			mustPattern(`Pay code payment[:\s]+(?P<amount>\d+(?:,\d+)*)\s+RWF to\s+(?P<name>[^(]+)`),
			mustPattern(`Your payment of\s+(?P<amount>\d+(?:,\d+)*)\s+RWF to\s+(?P<name>[^(]+)\s+pay code`),
		}},
		{models.CategoryTransferToMobile, []*Pattern{
			mustPattern(`\*165\*S\*(?P<amount>\d+(?:,\d+)*)\s+RWF transferred to\s+(?P<name>[^(]+)`),
			mustPattern(`(?P<amount>\d+(?:,\d+)*)\s+RWF transferred to mobile\s+(\d+)`),
			mustPattern(`Mobile transfer[:\s]+(?P<amount>\d+(?:,\d+)*)\s+RWF to\s+(\d+)`),
			mustPattern(`Transfer to\s+(?P<amount>\d+)[:\s]+(\d+(?:,\d+)*)\s+RWF`),
		}},
		{models.CategoryBankDeposit, []*Pattern{
			mustPattern(`\*113\*R\*A bank deposit of\s+(?P<amount>\d+(?:,\d+)*)\s+RWF has been added`),
			mustPattern(`Bank deposit[:\s]+(?P<amount>\d+(?:,\d+)*)\s+RWF`),
			mustPattern(`(?P<amount>\d+(?:,\d+)*)\s+RWF deposited to your bank account`),
			mustPattern(`Deposit to bank[:\s]+(?P<amount>\d+(?:,\d+)*)\s+RWF`),
		}},
		{models.CategoryBankTransfer, []*Pattern{
			mustPattern(`Bank transfer[:\s]+(?P<amount>\d+(?:,\d+)*)\s+RWF to\s+(?P<name>[^(]+)`),
			mustPattern(`(?P<amount>\d+(?:,\d+)*)\s+RWF transferred to bank account\s+(?P<name>[^(]+)`),
			mustPattern(`Transfer to bank[:\s]+(?P<amount>\d+(?:,\d+)*)\s+RWF`),
			mustPattern(`Your bank transfer of\s+(?P<amount>\d+(?:,\d+)*)\s+RWF`),
		}},
		{models.CategoryAirtimePurchase, []*Pattern{
			mustPattern(`\*162\*TxId:\d+\*S\*Your payment of\s+(?P<amount>\d+(?:,\d+)*)\s+RWF to Airtime`),
			mustPattern(`Your payment of\s+(?P<amount>\d+(?:,\d+)*)\s+RWF to Airtime`),
			mustPattern(`Airtime purchase[:\s]+(?P<amount>\d+(?:,\d+)*)\s+RWF`),
			mustPattern(`(?P<amount>\d+(?:,\d+)*)\s+RWF airtime purchased`),
		}},
		{models.CategoryCashPowerBill, []*Pattern{
			mustPattern(`Cash Power payment[:\s]+(?P<amount>\d+(?:,\d+)*)\s+RWF`),
			mustPattern(`Your payment of\s+(?P<amount>\d+(?:,\d+)*)\s+RWF to Cash Power`),
			mustPattern(`(?P<amount>\d+(?:,\d+)*)\s+RWF paid for electricity`),
			mustPattern(`Electricity bill payment[:\s]+(?P<amount>\d+(?:,\d+)*)\s+RWF`),
			mustPattern(`EUCL payment[:\s]+(?P<amount>\d+(?:,\d+)*)\s+RWF`),
		}},
		{models.CategoryThirdParty, []*Pattern{
			mustPattern(`Transaction initiated by\s+(?P<name>[^:]+)[:\s]+(?P<amount>\d+(?:,\d+)*)\s+RWF`),
			mustPattern(`Third party transaction[:\s]+(?P<amount>\d+(?:,\d+)*)\s+RWF from\s+(?P<name>[^(]+)`),
			mustPattern(`(?P<name>[^(]+)\s+initiated transaction of\s+(?P<amount>\d+(?:,\d+)*)\s+RWF`),
			mustPattern(`Auto transaction[:\s]+(?P<amount>\d+(?:,\d+)*)\s+RWF`),
		}},
		{models.CategoryAgentWithdrawal, []*Pattern{
			mustPattern(`Cash withdrawal[:\s]+(?P<amount>\d+(?:,\d+)*)\s+RWF from agent\s+(?P<name>[^(]+)`),
			mustPattern(`You withdrew\s+(?P<amount>\d+(?:,\d+)*)\s+RWF from agent\s+(?P<name>[^(]+)`),
			mustPattern(`Agent withdrawal[:\s]+(?P<amount>\d+(?:,\d+)*)\s+RWF`),
			mustPattern(`(?P<amount>\d+(?:,\d+)*)\s+RWF withdrawn from\s+(?P<name>[^(]+)`),
		}},
		{models.CategoryInternetVoiceBundle, []*Pattern{
			mustPattern(`Internet bundle purchase[:\s]+(?P<amount>\d+(?:,\d+)*)\s+RWF`),
			mustPattern(`Voice bundle purchase[:\s]+(?P<amount>\d+(?:,\d+)*)\s+RWF`),
			mustPattern(`Your payment of\s+(?P<amount>\d+(?:,\d+)*)\s+RWF to Internet Bundle`),
			mustPattern(`Your payment of\s+(?P<amount>\d+(?:,\d+)*)\s+RWF to Voice Bundle`),
			mustPattern(`(?P<amount>\d+(?:,\d+)*)\s+RWF paid for internet bundle`),
			mustPattern(`(?P<amount>\d+(?:,\d+)*)\s+RWF paid for voice bundle`),
			mustPattern(`Bundle purchase[:\s]+(?P<amount>\d+(?:,\d+)*)\s+RWF`),
		}},
		{models.CategoryOtherTransfer, []*Pattern{
			mustPattern(`(?P<amount>\d+(?:,\d+)*)\s+RWF transferred`),
			mustPattern(`Transfer[:\s]+(?P<amount>\d+(?:,\d+)*)\s+RWF`),
		}},
	}}
}

// registryFile is the YAML shape for an externally supplied pattern table.
// List order in the file is the classification priority order.
type registryFile struct {
	Categories []struct {
		Name     string   `yaml:"name"`
		Patterns []string `yaml:"patterns"`
	} `yaml:"categories"`
}

// LoadRegistry reads a pattern registry from a YAML file. Every category
// name must be one of the known categories and every pattern must compile;
// otherwise an error is returned and no registry is produced.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern file: %w", err)
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse pattern file %s: %w", path, err)
	}
	if len(file.Categories) == 0 {
		return nil, fmt.Errorf("pattern file %s defines no categories", path)
	}

	entries := make([]CategoryPatterns, 0, len(file.Categories))
	for _, c := range file.Categories {
		category := models.Category(c.Name)
		if !category.IsValid() {
			return nil, fmt.Errorf("unknown category %q in pattern file %s", c.Name, path)
		}
		if len(c.Patterns) == 0 {
			return nil, fmt.Errorf("category %q has no patterns in file %s", c.Name, path)
		}
		patterns := make([]*Pattern, 0, len(c.Patterns))
		for _, expr := range c.Patterns {
			p, err := compilePattern(expr)
			if err != nil {
				return nil, fmt.Errorf("category %q: %w", c.Name, err)
			}
			patterns = append(patterns, p)
		}
		entries = append(entries, CategoryPatterns{Category: category, Patterns: patterns})
	}

	return &Registry{entries: entries}, nil
}
