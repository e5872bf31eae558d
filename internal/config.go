package internal

import (
	"errors"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/apaliavy/golangcodestyle/internal/types"
)

// ErrInvalidConfig is returned for configurations that would make a run
// meaningless: malformed path globs or references to unknown rule IDs.
// It is surfaced before any traversal begins.
var ErrInvalidConfig = errors.New("invalid configuration")

// ValidateConfig checks the configuration against the registry.
func ValidateConfig(cfg types.Config, reg *Registry) error {
	for _, pattern := range cfg.ExcludedPaths {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("%w: malformed path glob %q", ErrInvalidConfig, pattern)
		}
	}
	for id := range cfg.Rules {
		if _, ok := reg.Lookup(id); !ok {
			return fmt.Errorf("%w: severity override for unknown rule %q", ErrInvalidConfig, id)
		}
	}
	for _, id := range cfg.DisabledRules {
		if _, ok := reg.Lookup(id); !ok {
			return fmt.Errorf("%w: disabled rule %q is not registered", ErrInvalidConfig, id)
		}
	}
	return nil
}
