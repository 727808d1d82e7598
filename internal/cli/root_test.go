package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mordilloSan/stamplog/logger"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

// TestLogCommand_WritesToFile checks a single plain line lands in the file.
func TestLogCommand_WritesToFile(t *testing.T) {
	t.Setenv("LOGGER_LEVELS", "")
	path := filepath.Join(t.TempDir(), "cli.log")

	_, err := run(t, "--file", path, "log", "warn", "disk", "full")
	require.NoError(t, err)

	content := readFile(t, path)
	require.Equal(t, 1, strings.Count(content, "\n"))
	require.Contains(t, content, "[WARN]  disk full")
	require.NotContains(t, content, "\x1b[")
}

// TestLogCommand_ConfigFileAndOverrides layers flags over the YAML settings.
func TestLogCommand_ConfigFileAndOverrides(t *testing.T) {
	t.Setenv("LOGGER_LEVELS", "")
	dir := t.TempDir()
	fromConfig := filepath.Join(dir, "config.log")
	fromFlag := filepath.Join(dir, "flag.log")
	settings := filepath.Join(dir, "stamplog.yaml")

	contents := "timezone: local\noutput:\n  type: file\n  file: " + fromConfig + "\nlevels: [ERROR]\n"
	require.NoError(t, os.WriteFile(settings, []byte(contents), 0o600))

	_, err := run(t, "-c", settings, "log", "info", "filtered")
	require.NoError(t, err)
	_, err = run(t, "-c", settings, "log", "error", "kept")
	require.NoError(t, err)

	content := readFile(t, fromConfig)
	require.NotContains(t, content, "filtered")
	require.Contains(t, content, "[ERROR] kept")

	_, err = run(t, "-c", settings, "--file", fromFlag, "--levels", "INFO", "log", "info", "moved")
	require.NoError(t, err)
	require.Contains(t, readFile(t, fromFlag), "[INFO]  moved")
	require.NotContains(t, readFile(t, fromConfig), "moved")
}

// TestLoggerConfig_ColorFlag applies per-level color overrides.
func TestLoggerConfig_ColorFlag(t *testing.T) {
	opts := &options{colors: map[string]string{"debug": "#000000", "WARNING": "#ffffff"}}
	cmd := NewRootCommand()

	cfg, err := opts.loggerConfig(cmd)
	require.NoError(t, err)
	require.Equal(t, logger.Colors{Debug: "#000000", Warn: "#ffffff"}, cfg.Colors)

	opts.colors = map[string]string{"TRACE": "#000000"}
	_, err = opts.loggerConfig(cmd)
	require.ErrorIs(t, err, logger.ErrUnknownLevel)
}

// TestLogCommand_Errors covers bad levels, bad settings and unopenable files.
func TestLogCommand_Errors(t *testing.T) {
	_, err := run(t, "log", "trace", "x")
	require.ErrorIs(t, err, logger.ErrUnknownLevel)

	_, err = run(t, "--timezone", "Mars/Olympus", "log", "info", "x")
	require.ErrorIs(t, err, logger.ErrUnknownTimezone)

	_, err = run(t, "--file", filepath.Join(t.TempDir(), "missing", "x.log"), "log", "info", "x")
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = run(t, "log")
	require.Error(t, err)
}

// TestDemoCommand writes one line per level.
func TestDemoCommand(t *testing.T) {
	t.Setenv("LOGGER_LEVELS", "")
	path := filepath.Join(t.TempDir(), "demo.log")

	_, err := run(t, "--file", path, "demo")
	require.NoError(t, err)

	content := readFile(t, path)
	for _, tag := range []string{"[DEBUG]", "[INFO] ", "[WARN] ", "[ERROR]"} {
		require.Contains(t, content, tag)
	}
	require.Equal(t, 4, strings.Count(content, "\n"))
}

// TestVersionCommand prints the version string.
func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "stamplog ")
}
