package config

// GetDefaults returns the default configuration values keyed by koanf path.
func GetDefaults() map[string]any {
	return map[string]any{
		"repo_path":    ".",
		"tag_strategy": StrategyLatest,
		"format":       FormatMarkdown,
		"plain":        false,
	}
}
