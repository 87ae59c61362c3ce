// Package process handles the SMS backup ingestion command.
package process

import (
	"github.com/spf13/cobra"

	cmdcommon "github.com/Tresor26/MOMO-Dashboard/cmd/common"
	"github.com/Tresor26/MOMO-Dashboard/cmd/root"
	"github.com/Tresor26/MOMO-Dashboard/internal/classifier"
	"github.com/Tresor26/MOMO-Dashboard/internal/ingest"
)

// Cmd represents the process command.
var Cmd = &cobra.Command{
	Use:   "process <backup.xml>",
	Short: "Classify an SMS backup file into the transaction database",
	Long: `Process reads an SMS backup XML export, classifies every message into a
transaction category, and replaces the stored transactions with the result.
Messages that match no pattern are counted and logged, not stored.`,
	Args: cobra.ExactArgs(1),
	Run:  processFunc,
}

func processFunc(cmd *cobra.Command, args []string) {
	xmlPath := args[0]
	root.Log.Infof("Processing SMS backup file: %s", xmlPath)

	s, err := cmdcommon.OpenStore()
	if err != nil {
		root.Log.Fatalf("Error opening database: %v", err)
	}
	defer func() {
		if err := s.Close(); err != nil {
			root.Log.Warnf("Failed to close database: %v", err)
		}
	}()

	registry, err := cmdcommon.BuildRegistry()
	if err != nil {
		root.Log.Fatalf("Error building pattern registry: %v", err)
	}

	logger := root.Logger()
	processor := ingest.NewProcessor(classifier.New(registry, logger), s, logger, ingest.Options{
		ProgressInterval: root.Cfg.Ingest.ProgressInterval,
		LogBodyLimit:     root.Cfg.Ingest.LogBodyLimit,
	})

	result, err := processor.Run(cmd.Context(), xmlPath)
	if err != nil {
		root.Log.Fatalf("Error processing SMS backup: %v", err)
	}

	root.Log.Infof("Stored %d transactions, ignored %d messages (%.1f%% classified)",
		result.Processed, result.Ignored, result.SuccessRate())
}
