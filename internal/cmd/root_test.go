package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procsweep/internal/config"
	"procsweep/internal/session"
	"procsweep/internal/tui"
)

// executeCommand runs a fresh root command with args and returns captured output
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// isolate keeps the developer's own config and environment out of the test
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Chdir(dir)
	return dir
}

// captureRun replaces the TUI runner and returns the model it was given
func captureRun(t *testing.T) *tea.Model {
	t.Helper()
	var got tea.Model
	orig := runProgram
	runProgram = func(m tea.Model) error {
		got = m
		return nil
	}
	t.Cleanup(func() { runProgram = orig })
	return &got
}

func TestVersion(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "procsweep "+version+"\n", out)

	out, err = executeCommand(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "procsweep "+version+"\n", out)
}

func TestRootCommandRejectsArgs(t *testing.T) {
	_, err := executeCommand(t, "extra")
	assert.Error(t, err)
}

func TestFlagsOverrideConfig(t *testing.T) {
	dir := isolate(t)
	cfgPath := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("refresh:\n  interval: 10s\nsort:\n  column: name\n"), 0o644))

	root := newRootCmd()
	require.NoError(t, root.ParseFlags([]string{"--refresh", "5s", "--desc", "--filter", "chrome"}))

	cfg, err := loadConfig(root, config.NewViper(cfgPath))
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Refresh.Interval, "flag beats file")
	assert.Equal(t, "name", cfg.Sort.Column, "file beats unchanged flag default")
	assert.True(t, cfg.Sort.Descending)
	assert.Equal(t, "chrome", cfg.Filter)
}

func TestInvalidFlagValue(t *testing.T) {
	isolate(t)
	captureRun(t)

	_, err := executeCommand(t, "--sort", "cpu")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sort.column")
}

func TestRunBuildsModelFromConfig(t *testing.T) {
	dir := isolate(t)
	got := captureRun(t)
	logPath := filepath.Join(dir, "logs", "procsweep.log")

	_, err := executeCommand(t, "--sort", "memory", "--desc", "--filter", "sh", "--log-file", logPath, "--log-level", "debug")
	require.NoError(t, err)

	model, ok := (*got).(tui.Model)
	require.True(t, ok)
	col, asc := model.State().Sort()
	assert.Equal(t, session.SortMemory, col)
	assert.False(t, asc)
	assert.Equal(t, "sh", model.State().Query())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"starting"`)
}
