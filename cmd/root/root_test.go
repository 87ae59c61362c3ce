package root_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Tresor26/MOMO-Dashboard/cmd/root"
)

func TestRootCommandMetadata(t *testing.T) {
	assert.Equal(t, "momo-dashboard", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Long, "SMS")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRun)
}

func TestRootInitRegistersPersistentFlags(t *testing.T) {
	root.Init()

	assert.NotNil(t, root.Cmd.PersistentFlags().Lookup("db"))
	assert.NotNil(t, root.Cmd.PersistentFlags().Lookup("patterns"))
}
