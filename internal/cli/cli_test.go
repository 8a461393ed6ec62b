package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := NewRootCommand(BuildInfo{Version: "1.0.0", Commit: "abc", Date: "today"})

	assert.Equal(t, "mdlinkify", cmd.Use)
	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "scan")
	assert.Contains(t, names, "rewrite")
	assert.Contains(t, names, "version")
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := NewRootCommand(BuildInfo{})
	flags := cmd.PersistentFlags()

	for _, name := range []string{"debug", "config", "color", "previous-chars"} {
		assert.NotNil(t, flags.Lookup(name), "missing global flag --%s", name)
	}
	assert.Equal(t, "auto", flags.Lookup("color").DefValue)
}

func TestSubcommandFlags(t *testing.T) {
	t.Parallel()

	cmd := NewRootCommand(BuildInfo{})

	scanCmd, _, err := cmd.Find([]string{"scan"})
	require.NoError(t, err)
	assert.NotNil(t, scanCmd.Flags().Lookup("json"))

	rewriteCmd, _, err := cmd.Find([]string{"rewrite"})
	require.NoError(t, err)
	assert.NotNil(t, rewriteCmd.Flags().Lookup("expand-autolinks"))
}

func TestScanRequiresArgs(t *testing.T) {
	t.Parallel()

	cmd := NewRootCommand(BuildInfo{})
	cmd.SetArgs([]string{"scan"})

	err := cmd.Execute()
	require.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := loadConfig(&rootOptions{})
		require.NoError(t, err)
		assert.Equal(t, "*_~(", cfg.PreviousChars)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cfg.yaml")
		require.NoError(t, os.WriteFile(path,
			[]byte("previous_chars: \"*\"\nlog_level: warn\n"), 0o600))

		cfg, err := loadConfig(&rootOptions{configPath: path})
		require.NoError(t, err)
		assert.Equal(t, "*", cfg.PreviousChars)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("flags override file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cfg.yaml")
		require.NoError(t, os.WriteFile(path, []byte("previous_chars: \"*\"\n"), 0o600))

		cfg, err := loadConfig(&rootOptions{
			configPath:    path,
			previousChars: "(",
			debug:         true,
		})
		require.NoError(t, err)
		assert.Equal(t, "(", cfg.PreviousChars)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadConfig(&rootOptions{configPath: "/nonexistent/cfg.yaml"})
		require.Error(t, err)
	})
}

func TestReadInput(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("hello a@b.com"), 0o600))

	data, err := readInput(path)
	require.NoError(t, err)
	assert.Equal(t, "hello a@b.com", string(data))

	_, err = readInput(filepath.Join(t.TempDir(), "absent.md"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "read")
}
