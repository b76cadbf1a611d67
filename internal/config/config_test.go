package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/palantir/tslint-sub000/internal/charclass"
)

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := write(t, dir, FileName, "language = \"es3\"\njobs = 2\ncheck_regex = true\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, charclass.ES3, cfg.Version())
	require.Equal(t, 2, cfg.EffectiveJobs())
	require.True(t, cfg.CheckRegex)
	// untouched keys keep their defaults
	require.Equal(t, 100, cfg.MaxDiagnostics)
	require.Equal(t, path, cfg.Path)
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := write(t, dir, "tslex.yaml", "indent: 2\nuse_tabs: false\nlog_level: debug\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Indent)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "  ", cfg.FormatOptions().Unit())
}

func TestLoadRejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"a.toml": "language = \"es6\"\n",
		"b.toml": "jobs = -1\n",
		"c.yml":  "color: sometimes\n",
		"d.yml":  "unknown_key: 1\n",
		"e.json": "{}",
	} {
		_, err := Load(write(t, dir, name, content))
		require.Error(t, err, name)
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	write(t, root, FileName, "jobs = 3\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	path, ok, err := Find(nested)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, filepath.Join(root, FileName), path)

	cfg, err := Resolve("", nested)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Jobs)
}

func TestResolveDefaults(t *testing.T) {
	cfg, err := Resolve("", t.TempDir())
	require.NoError(t, err)
	// a tslex.toml further up the real filesystem would change this
	if cfg.Path == "" {
		require.Equal(t, Default(), cfg)
	}
}

func TestToYAML(t *testing.T) {
	out, err := Default().ToYAML()
	require.NoError(t, err)
	require.Contains(t, string(out), "language: es5")
	require.NotContains(t, string(out), "path")
}
