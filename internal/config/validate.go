package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ValidateYAMLSyntax checks that the file at path is well-formed YAML.
// Returns an error carrying the parser's position information when not.
func ValidateYAMLSyntax(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid YAML syntax: %w", err)
	}
	return nil
}

// ValidateConfigValues checks that enumerated configuration fields hold
// allowed values. source names where the values came from ("config",
// "flags") so errors point at the right surface.
func ValidateConfigValues(cfg *Configuration, source string) error {
	switch cfg.TagStrategy {
	case StrategyLatest, StrategyPrevious:
	default:
		return fmt.Errorf("%s: invalid tag_strategy %q (expected %q or %q)",
			source, cfg.TagStrategy, StrategyLatest, StrategyPrevious)
	}

	switch cfg.Format {
	case FormatMarkdown, FormatTerminal:
	default:
		return fmt.Errorf("%s: invalid format %q (expected %q or %q)",
			source, cfg.Format, FormatMarkdown, FormatTerminal)
	}

	if cfg.RepoPath == "" {
		return fmt.Errorf("%s: repo_path cannot be empty", source)
	}

	return nil
}

// fileExists returns true if the file exists and is readable.
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
