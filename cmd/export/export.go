// Package export handles the CSV export command.
package export

import (
	"github.com/spf13/cobra"

	cmdcommon "github.com/Tresor26/MOMO-Dashboard/cmd/common"
	"github.com/Tresor26/MOMO-Dashboard/cmd/root"
	"github.com/Tresor26/MOMO-Dashboard/internal/common"
	"github.com/Tresor26/MOMO-Dashboard/internal/models"
	"github.com/Tresor26/MOMO-Dashboard/internal/store"
)

var (
	output   string
	category string
	date     string
)

// Cmd represents the export command.
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored transactions to a CSV file",
	Long: `Export writes the stored transactions to a CSV file, optionally filtered
by category or by date prefix (for example 2024-05 for one month).`,
	Run: exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "transactions.csv", "Output CSV file")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Only export one category")
	Cmd.Flags().StringVar(&date, "date", "", "Only export dates starting with this prefix")
}

func exportFunc(cmd *cobra.Command, args []string) {
	s, err := cmdcommon.OpenStore()
	if err != nil {
		root.Log.Fatalf("Error opening database: %v", err)
	}
	defer func() {
		if err := s.Close(); err != nil {
			root.Log.Warnf("Failed to close database: %v", err)
		}
	}()

	transactions, err := s.ListTransactions(cmd.Context(), store.Filter{
		Category:   category,
		DatePrefix: date,
	})
	if err != nil {
		root.Log.Fatalf("Error querying transactions: %v", err)
	}
	if transactions == nil {
		transactions = []models.StoredTransaction{}
	}

	if err := common.WriteTransactionsToCSV(transactions, output); err != nil {
		root.Log.Fatalf("Error writing CSV file: %v", err)
	}

	root.Log.Infof("Exported %d transactions to %s", len(transactions), output)
}
