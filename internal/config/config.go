// Package config provides configuration management for relog using koanf.
// Configuration is loaded with priority: environment variables (RELOG_*) >
// project config (.relog.yml or .relog.json) > defaults. The commit type
// table is deliberately not configurable; it is a closed set owned by
// internal/changelog.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Tag strategies: which tag the changelog range starts from.
const (
	// StrategyLatest diffs from the highest-versioned tag. Suits runs that
	// happen before the new release tag is created.
	StrategyLatest = "latest"
	// StrategyPrevious diffs from the second-highest-versioned tag. Suits
	// runs triggered by the release tag itself, which must be excluded
	// from the range.
	StrategyPrevious = "previous"
)

// Output formats.
const (
	FormatMarkdown = "markdown"
	FormatTerminal = "terminal"
)

// Default project config file names, checked in order.
const (
	projectConfigYAML = ".relog.yml"
	projectConfigJSON = ".relog.json"
)

// Configuration represents the relog CLI configuration.
type Configuration struct {
	// RepoPath is the repository to read. Relative paths are resolved
	// against the working directory.
	RepoPath string `koanf:"repo_path"`

	// TagStrategy selects the reference to diff from: "latest" or
	// "previous". See the strategy constants for when each applies.
	TagStrategy string `koanf:"tag_strategy"`

	// Format selects the output renderer: "markdown" (the CI contract) or
	// "terminal" (colored local preview).
	Format string `koanf:"format"`

	// Plain disables colors in terminal format.
	Plain bool `koanf:"plain"`
}

// Load loads configuration from defaults, the project config file, and
// environment variables. configPath overrides the project config location;
// when empty, .relog.yml then .relog.json in the working directory are
// tried. A missing config file is not an error; a malformed one is.
func Load(configPath string) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if err := loadProjectConfig(k, configPath); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider("RELOG_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := ValidateConfigValues(&cfg, "config"); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadDefaults applies default configuration values.
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadProjectConfig loads the project config file when one exists. YAML is
// preferred; JSON is accepted for projects that keep all their tooling
// config in JSON.
func loadProjectConfig(k *koanf.Koanf, customPath string) error {
	if customPath != "" {
		return loadConfigFile(k, customPath)
	}

	if fileExists(projectConfigYAML) {
		return loadConfigFile(k, projectConfigYAML)
	}
	if fileExists(projectConfigJSON) {
		return loadConfigFile(k, projectConfigJSON)
	}
	return nil
}

// loadConfigFile loads a single config file, picking the parser from the
// file extension. YAML syntax is validated before the koanf load so syntax
// errors carry the file position instead of a generic parse failure.
func loadConfigFile(k *koanf.Koanf, path string) error {
	if strings.HasSuffix(path, ".json") {
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return fmt.Errorf("loading config %s: %w", path, err)
		}
		return nil
	}

	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating config %s: %w", path, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading config %s: %w", path, err)
	}
	return nil
}

// envTransform converts environment variable names to config keys.
// Example: RELOG_TAG_STRATEGY -> tag_strategy
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "RELOG_"))
}
