package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"picren/internal/config"
	"picren/internal/errors"
	"picren/internal/log"
	"picren/internal/tui/styles"
	"picren/pkg/testutils"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCmd executes the CLI with a config file in a temp dir.
func runCmd(t *testing.T, configYAML string, args ...string) (string, string, error) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if configYAML != "" {
		require.NoError(t, os.WriteFile(cfgPath, []byte(configYAML), 0644))
	}
	return runWithConfig(t, cfgPath, args...)
}

func runWithConfig(t *testing.T, cfgPath string, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() {
		log.SetDebug(false)
		log.Configure()
	})

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestListCommand(t *testing.T) {
	dir := testutils.ImageDir(t, "img10.jpg", "img2.jpg", "img1.jpg", "readme.md")

	out, _, err := runCmd(t, "", "list", dir)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "0  img1.jpg")
	assert.Contains(t, lines[1], "1  img10.jpg")
	assert.Contains(t, lines[2], "2  img2.jpg")

	out, _, err = runCmd(t, "sort:\n  collation: natural\n", "list", dir)
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[2], "2  img10.jpg")
}

func TestListDetails(t *testing.T) {
	dir := testutils.ImageDir(t, "a.jpg")

	out, _, err := runCmd(t, "", "list", "--details", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "0  a.jpg · 1 B")
}

func TestRenameCommand(t *testing.T) {
	dir := testutils.ImageDir(t, "apple.jpg", "banana.jpg", "cherry.jpg", "date.jpg")

	out, _, err := runCmd(t, "", "rename", filepath.Join(dir, "banana.jpg"), "eggplant.jpg")
	require.NoError(t, err)
	assert.Equal(t, "banana.jpg → eggplant.jpg (position 1 → 3)\n", out)
	assert.FileExists(t, filepath.Join(dir, "eggplant.jpg"))
	assert.NoFileExists(t, filepath.Join(dir, "banana.jpg"))

	out, _, err = runCmd(t, "", "rename", filepath.Join(dir, "date.jpg"), "aardvark.jpg")
	require.NoError(t, err)
	assert.Equal(t, "date.jpg → aardvark.jpg (position 2 → 0)\n", out)
}

func TestRenameCommandErrors(t *testing.T) {
	dir := testutils.ImageDir(t, "a.jpg", "b.jpg", "notes.txt")

	tests := []struct {
		name    string
		config  string
		args    []string
		wantErr string
	}{
		{
			name:    "collision",
			args:    []string{filepath.Join(dir, "a.jpg"), "b.jpg"},
			wantErr: "already exists",
		},
		{
			name:    "path separator",
			args:    []string{filepath.Join(dir, "a.jpg"), "sub/c.jpg"},
			wantErr: "forbidden characters",
		},
		{
			name:    "configured forbidden character",
			config:  "rename:\n  forbidden_chars: \"/:\"\n",
			args:    []string{filepath.Join(dir, "a.jpg"), "c:d.jpg"},
			wantErr: "forbidden characters",
		},
		{
			name:    "not an image",
			args:    []string{filepath.Join(dir, "notes.txt"), "c.jpg"},
			wantErr: "not an image in the list",
		},
		{
			name:    "missing directory",
			args:    []string{filepath.Join(dir, "gone", "a.jpg"), "c.jpg"},
			wantErr: "directory not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCmd(t, tt.config, append([]string{"rename"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	assert.FileExists(t, filepath.Join(dir, "a.jpg"))
	assert.FileExists(t, filepath.Join(dir, "b.jpg"))
}

func TestRenameHints(t *testing.T) {
	dir := testutils.ImageDir(t, "a.jpg", "b.jpg")

	tests := []struct {
		name     string
		args     []string
		wantHint string
		wantExit int
	}{
		{
			name:     "collision",
			args:     []string{filepath.Join(dir, "a.jpg"), "b.jpg"},
			wantHint: "Hint: pick a name that is not taken",
			wantExit: 2,
		},
		{
			name:     "forbidden character",
			args:     []string{filepath.Join(dir, "a.jpg"), "x/y.jpg"},
			wantHint: `contain "/"`,
			wantExit: 2,
		},
		{
			name:     "unknown file",
			args:     []string{filepath.Join(dir, "c.jpg"), "d.jpg"},
			wantHint: "Hint: run 'picren list'",
			wantExit: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errOut, err := runCmd(t, "", append([]string{"rename"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, errOut, tt.wantHint)
			assert.Equal(t, tt.wantExit, exitStatus(err))
		})
	}
}

func TestExitStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"plain", errors.New("boom"), 1},
		{"invalid name", errors.NewFileError("bad", "x", errors.InvalidName, nil), 2},
		{"wrapped collision", errors.Wrapf(errors.NewFileError("taken", "b.jpg", errors.FileExists, nil), "cannot rename %s", "a.jpg"), 2},
		{"missing", fmt.Errorf("load: %w", errors.NewFileError("gone", "/pics", errors.FileNotFound, nil)), 3},
		{"access", errors.NewFileError("denied", "/pics", errors.FileAccessDenied, nil), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitStatus(tt.err))
		})
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "picren", "config.yaml")

	out, _, err := runWithConfig(t, path, "config", "init")
	require.NoError(t, err)
	assert.Equal(t, "Wrote "+path+"\n", out)

	loaded, err := config.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.New().ThemeColors(), loaded.ThemeColors())
	assert.Equal(t, "f2", loaded.Rename.Accelerator)

	_, _, err = runWithConfig(t, path, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = runWithConfig(t, path, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigThemes(t *testing.T) {
	out, _, err := runCmd(t, "theme:\n  name: dark\n", "config", "themes")
	require.NoError(t, err)
	assert.Contains(t, out, "* dark\n")
	assert.Contains(t, out, "  default\n")
}

func TestThemeColorsReachStyles(t *testing.T) {
	t.Cleanup(func() { styles.Use(config.New().ThemeColors()) })

	_, _, err := runCmd(t, "theme:\n  name: dark\n  primary: \"33\"\n", "list", testutils.ImageDir(t, "a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, lipgloss.Color("33"), styles.Theme.Title.GetForeground())
	assert.Equal(t, lipgloss.Color(config.GetTheme("dark")["error"]), styles.Theme.Error.GetForeground())
}

func TestLogJSON(t *testing.T) {
	dir := testutils.ImageDir(t, "a.jpg")

	_, errOut, err := runCmd(t, "", "--debug", "--log-json", "list", dir)
	require.NoError(t, err)
	assert.Contains(t, errOut, `"message":"store loaded"`)
	assert.Contains(t, errOut, `"images":1`)

	_, errOut, err = runCmd(t, "", "--debug", "list", dir)
	require.NoError(t, err)
	assert.Contains(t, errOut, "store loaded")
	assert.NotContains(t, errOut, `"message"`)

	_, errOut, err = runCmd(t, "", "list", dir)
	require.NoError(t, err)
	assert.NotContains(t, errOut, "store loaded")
}

func TestUnreadableConfig(t *testing.T) {
	_, errOut, err := runWithConfig(t, t.TempDir(), "list", testutils.ImageDir(t, "a.jpg"))
	require.NoError(t, err)
	assert.Contains(t, errOut, "Warning: could not read config")
	assert.Contains(t, errOut, "Using default settings.")
}

func TestInvalidConfigFallsBackToDefaults(t *testing.T) {
	dir := testutils.ImageDir(t, "a.jpg")

	out, errOut, err := runCmd(t, "sort:\n  collation: shuffle\n", "list", dir)
	require.NoError(t, err)
	assert.Contains(t, errOut, "Warning:")
	assert.Contains(t, errOut, "Using default settings.")
	assert.Contains(t, out, "a.jpg")
}

func TestEnvDebug(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("PICREN_DEBUG", tt.value)
			assert.Equal(t, tt.want, envDebug())
		})
	}
}

func TestDirectoryArg(t *testing.T) {
	_, _, err := runCmd(t, "directories:\n  default: /srv/pictures\n", "list", testutils.ImageDir(t, "a.jpg"))
	require.NoError(t, err)

	assert.Equal(t, "/srv/pictures", directoryArg(nil))
	assert.Equal(t, "other", directoryArg([]string{"other"}))

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "pics"), directoryArg([]string{"~/pics"}))
}
