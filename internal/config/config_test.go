package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.RepoPath)
	assert.Equal(t, StrategyLatest, cfg.TagStrategy)
	assert.Equal(t, FormatMarkdown, cfg.Format)
	assert.False(t, cfg.Plain)
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestLoadYAMLConfig(t *testing.T) {
	path := writeConfig(t, "relog.yml", "tag_strategy: previous\nformat: terminal\nplain: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, StrategyPrevious, cfg.TagStrategy)
	assert.Equal(t, FormatTerminal, cfg.Format)
	assert.True(t, cfg.Plain)
	// Unset keys keep their defaults.
	assert.Equal(t, ".", cfg.RepoPath)
}

func TestLoadJSONConfig(t *testing.T) {
	path := writeConfig(t, "relog.json", `{"repo_path": "/src/project", "tag_strategy": "previous"}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/src/project", cfg.RepoPath)
	assert.Equal(t, StrategyPrevious, cfg.TagStrategy)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "relog.yml", "tag_strategy: previous\n")
	t.Setenv("RELOG_TAG_STRATEGY", "latest")
	t.Setenv("RELOG_FORMAT", "terminal")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, StrategyLatest, cfg.TagStrategy)
	assert.Equal(t, FormatTerminal, cfg.Format)
}

func TestLoadInvalidYAMLSyntax(t *testing.T) {
	path := writeConfig(t, "relog.yml", "tag_strategy: [unclosed\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YAML")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"bad strategy": "tag_strategy: newest\n",
		"bad format":   "format: html\n",
		"empty repo":   "repo_path: \"\"\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeConfig(t, "relog.yml", content)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestValidateConfigValuesNamesSource(t *testing.T) {
	cfg := &Configuration{RepoPath: ".", TagStrategy: "nope", Format: FormatMarkdown}
	err := ValidateConfigValues(cfg, "flags")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flags:")
	assert.Contains(t, err.Error(), "tag_strategy")
}
