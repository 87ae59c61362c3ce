// Package report renders transaction summaries for the command line.
package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/Tresor26/MOMO-Dashboard/internal/logging"
	"github.com/Tresor26/MOMO-Dashboard/internal/models"
	"github.com/Tresor26/MOMO-Dashboard/internal/store"
)

// Summary bundles the aggregates one report covers.
type Summary struct {
	Categories []store.CategorySummary `json:"categories"`
	Monthly    []store.MonthlySummary  `json:"monthly"`
}

// Generator renders summaries as text tables or JSON.
type Generator struct {
	log logging.Logger
}

// NewGenerator creates a report generator.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	return &Generator{log: logger}
}

// Generate renders the summary in the requested format ("text" or "json").
func (g *Generator) Generate(summary Summary, format string) ([]byte, error) {
	switch format {
	case "json":
		return g.generateJSON(summary)
	case "text", "":
		return g.generateText(summary)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) generateJSON(summary Summary) ([]byte, error) {
	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		g.log.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return out, nil
}

func (g *Generator) generateText(summary Summary) ([]byte, error) {
	var buf strings.Builder

	if len(summary.Categories) > 0 {
		buf.WriteString("Transactions by category\n\n")
		w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CATEGORY\tCOUNT\tTOTAL (RWF)")
		for _, c := range summary.Categories {
			fmt.Fprintf(w, "%s\t%d\t%.0f\n", models.Category(c.Category).DisplayName(), c.Count, c.Total)
		}
		if err := w.Flush(); err != nil {
			return nil, fmt.Errorf("failed to render category table: %w", err)
		}
	} else {
		buf.WriteString("No transactions stored.\n")
	}

	if len(summary.Monthly) > 0 {
		buf.WriteString("\nTransactions by month\n\n")
		w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "MONTH\tCOUNT\tTOTAL\tOUT\tIN")
		for _, m := range summary.Monthly {
			fmt.Fprintf(w, "%s\t%d\t%.0f\t%.0f\t%.0f\n",
				m.Month, m.TransactionCount, m.TotalAmount, m.OutgoingAmount, m.IncomingAmount)
		}
		if err := w.Flush(); err != nil {
			return nil, fmt.Errorf("failed to render monthly table: %w", err)
		}
	}

	return []byte(buf.String()), nil
}
