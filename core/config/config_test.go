package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"dataset-reconciler/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "clia-labs", cfg.Server.DefaultProfile)
	assert.True(t, cfg.Server.Swagger)
	assert.Equal(t, "snapshots", cfg.Storage.Bucket)
	assert.Equal(t, "reconciler", cfg.Database.Name)
	assert.Equal(t, "Output", cfg.Output.Dir)
	assert.False(t, cfg.Output.Timestamp)
	assert.Equal(t, 20, cfg.Display.MaxRows)
	assert.Equal(t, 40, cfg.Display.MaxColWidth)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Profiles)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("OUTPUT_DIR", "results")
	t.Setenv("DISPLAY_MAX_ROWS", "5")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "results", cfg.Output.Dir)
	assert.Equal(t, 5, cfg.Display.MaxRows)
}

func TestLoadConfigCustomProfiles(t *testing.T) {
	dir := t.TempDir()
	yaml := `profiles:
  - name: State Registry
    columns: [ID, STATE, PHONE]
    key: [ID]
    master_has_header: true
    filter:
      column: STATE
      allow: [AL]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "reconciler.yaml"), []byte(yaml), 0o644))

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	require.Len(t, cfg.Profiles, 1)
	p := cfg.Profiles[0]
	assert.Equal(t, "State Registry", p.Name)
	assert.Equal(t, "state_registry", p.Slug)
	assert.Equal(t, []string{"ID", "STATE", "PHONE"}, p.Columns)
	assert.Equal(t, []string{"ID"}, p.Key)
	assert.True(t, p.MasterHasHeader)
	require.NotNil(t, p.Filter)
	assert.Equal(t, "STATE", p.Filter.Column)
}

func TestLoadConfigRejectsInvalidProfile(t *testing.T) {
	dir := t.TempDir()
	yaml := `profiles:
  - name: Broken
    columns: [ID]
    key: [MISSING]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "reconciler.yaml"), []byte(yaml), 0o644))

	_, err := config.LoadConfig(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Broken")
}
