package summary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Tresor26/MOMO-Dashboard/cmd/summary"
)

func TestSummaryCommandMetadata(t *testing.T) {
	assert.Equal(t, "summary", summary.Cmd.Use)
	assert.Contains(t, summary.Cmd.Short, "summaries")
	assert.NotNil(t, summary.Cmd.Run)
	assert.NotNil(t, summary.Cmd.Flags().Lookup("format"))
	assert.NotNil(t, summary.Cmd.Flags().Lookup("output"))
}
