// Package summary handles the aggregate report command.
package summary

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cmdcommon "github.com/Tresor26/MOMO-Dashboard/cmd/common"
	"github.com/Tresor26/MOMO-Dashboard/cmd/root"
	"github.com/Tresor26/MOMO-Dashboard/internal/report"
)

var (
	format string
	output string
)

// Cmd represents the summary command.
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Print per-category and per-month transaction summaries",
	Long: `Summary aggregates the stored transactions by category and by calendar
month and renders the result as a text table or JSON.`,
	Run: summaryFunc,
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text or json")
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Write the report to a file instead of stdout")
}

func summaryFunc(cmd *cobra.Command, args []string) {
	s, err := cmdcommon.OpenStore()
	if err != nil {
		root.Log.Fatalf("Error opening database: %v", err)
	}
	defer func() {
		if err := s.Close(); err != nil {
			root.Log.Warnf("Failed to close database: %v", err)
		}
	}()

	ctx := cmd.Context()

	categories, err := s.CategorySummary(ctx)
	if err != nil {
		root.Log.Fatalf("Error querying category summary: %v", err)
	}
	monthly, err := s.MonthlySummary(ctx)
	if err != nil {
		root.Log.Fatalf("Error querying monthly summary: %v", err)
	}

	generator := report.NewGenerator(root.Logger())
	out, err := generator.Generate(report.Summary{Categories: categories, Monthly: monthly}, format)
	if err != nil {
		root.Log.Fatalf("Error generating report: %v", err)
	}

	if output == "" {
		fmt.Println(string(out))
		return
	}
	if err := os.WriteFile(output, out, 0o600); err != nil {
		root.Log.Fatalf("Error writing report file: %v", err)
	}
	root.Log.Infof("Report written to %s", output)
}
