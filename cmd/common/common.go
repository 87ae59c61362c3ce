// Package common holds helpers shared by the CLI commands.
package common

import (
	"fmt"

	"github.com/Tresor26/MOMO-Dashboard/cmd/root"
	"github.com/Tresor26/MOMO-Dashboard/internal/classifier"
	"github.com/Tresor26/MOMO-Dashboard/internal/store"
)

// OpenStore opens the configured SQLite database.
func OpenStore() (*store.Store, error) {
	s, err := store.New(root.Cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", root.Cfg.Database.Path, err)
	}
	return s, nil
}

// BuildRegistry returns the pattern registry, loading the configured YAML
// file when one is set and falling back to the built-in table otherwise.
func BuildRegistry() (*classifier.Registry, error) {
	if root.Cfg.Patterns.File == "" {
		return classifier.NewRegistry(), nil
	}

	root.Log.WithField("file", root.Cfg.Patterns.File).Info("Loading pattern registry")
	registry, err := classifier.LoadRegistry(root.Cfg.Patterns.File)
	if err != nil {
		return nil, fmt.Errorf("failed to load pattern registry: %w", err)
	}
	return registry, nil
}
