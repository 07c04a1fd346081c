// Package config_test tests configuration loading, merging hierarchy, and environment variable overrides.
// Related: internal/config/config.go
// Tags: config, loading, merging, env-vars, json, precedence, validation
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults tests that defaults are applied when no config files
// exist. Requires HOME isolation to avoid loading a real global config.
// NO t.Parallel() due to environment changes.
func TestLoad_Defaults(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "./content", cfg.ContentDir)
	assert.Equal(t, 70, cfg.MinScore)
	assert.Equal(t, "text", cfg.Output)
	assert.True(t, cfg.ShowProgress)
}

func TestLoad_LocalOverride(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	configPath := filepath.Join(tmpDir, "config.json")
	configContent := `{
		"content_dir": "./pages",
		"min_score": 85
	}`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cfg, err := Load(configPath)

	require.NoError(t, err)
	assert.Equal(t, "./pages", cfg.ContentDir)
	assert.Equal(t, 85, cfg.MinScore)
	// Unset keys keep their defaults.
	assert.Equal(t, "text", cfg.Output)
}

func TestLoad_GlobalConfig(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	globalDir := filepath.Join(tmpDir, ".pagecheck")
	require.NoError(t, os.MkdirAll(globalDir, 0755))
	globalContent := `{"min_score": 90, "output": "json"}`
	require.NoError(t, os.WriteFile(filepath.Join(globalDir, "config.json"), []byte(globalContent), 0644))

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, 90, cfg.MinScore)
	assert.Equal(t, "json", cfg.Output)
}

func TestLoad_LocalOverridesGlobal(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	globalDir := filepath.Join(tmpDir, ".pagecheck")
	require.NoError(t, os.MkdirAll(globalDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(globalDir, "config.json"), []byte(`{"min_score": 90}`), 0644))

	localPath := filepath.Join(tmpDir, "local.json")
	require.NoError(t, os.WriteFile(localPath, []byte(`{"min_score": 60}`), 0644))

	cfg, err := Load(localPath)

	require.NoError(t, err)
	assert.Equal(t, 60, cfg.MinScore)
}

func TestLoad_EnvOverridesEverything(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("PAGECHECK_MIN_SCORE", "95")
	t.Setenv("PAGECHECK_OUTPUT", "json")

	localPath := filepath.Join(tmpDir, "local.json")
	require.NoError(t, os.WriteFile(localPath, []byte(`{"min_score": 60, "output": "text"}`), 0644))

	cfg, err := Load(localPath)

	require.NoError(t, err)
	assert.Equal(t, 95, cfg.MinScore)
	assert.Equal(t, "json", cfg.Output)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := map[string]struct {
		content string
	}{
		"score above range": {content: `{"min_score": 150}`},
		"score below range": {content: `{"min_score": -5}`},
		"unknown output":    {content: `{"output": "xml"}`},
		"empty content dir": {content: `{"content_dir": ""}`},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			tmpDir := t.TempDir()
			t.Setenv("HOME", tmpDir)

			localPath := filepath.Join(tmpDir, "local.json")
			require.NoError(t, os.WriteFile(localPath, []byte(tc.content), 0644))

			_, err := Load(localPath)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "config validation failed")
		})
	}
}

func TestLoad_MalformedLocalConfig(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	localPath := filepath.Join(tmpDir, "local.json")
	require.NoError(t, os.WriteFile(localPath, []byte(`{"min_score": `), 0644))

	_, err := Load(localPath)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load local config")
}

func TestLoad_MissingLocalConfigIsFine(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	cfg, err := Load(filepath.Join(tmpDir, "does-not-exist.json"))

	require.NoError(t, err)
	assert.Equal(t, 70, cfg.MinScore)
}

func TestLoad_ExpandsHomeInContentDir(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	localPath := filepath.Join(tmpDir, "local.json")
	require.NoError(t, os.WriteFile(localPath, []byte(`{"content_dir": "~/content"}`), 0644))

	cfg, err := Load(localPath)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "content"), cfg.ContentDir)
}

func TestEnvTransform(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "min_score", envTransform("PAGECHECK_MIN_SCORE"))
	assert.Equal(t, "content_dir", envTransform("PAGECHECK_CONTENT_DIR"))
	assert.Equal(t, "show_progress", envTransform("PAGECHECK_SHOW_PROGRESS"))
}
