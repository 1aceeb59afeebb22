package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "dashboard.yaml"))
	require.NoError(t, err)
	require.Equal(t, DefaultAddr, cfg.Addr)
	require.Equal(t, DefaultArchiveDir, cfg.ArchiveDir)
	require.Equal(t, DefaultWorkDir, cfg.WorkDir)
	require.Equal(t, DefaultMetric1, cfg.Metric1)
	require.Equal(t, DefaultMetric2, cfg.Metric2)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	yaml := "addr: \":9090\"\narchive_dir: exports\ndefault_metric1: jump_height\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Addr)
	require.Equal(t, "exports", cfg.ArchiveDir)
	require.Equal(t, "jump_height", cfg.Metric1)
	// Untouched fields keep their defaults.
	require.Equal(t, DefaultWorkDir, cfg.WorkDir)
	require.Equal(t, DefaultMetric2, cfg.Metric2)
}

func TestLoad_RejectsEmptyAddr(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \"\"\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- broken"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}
