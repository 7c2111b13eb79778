// Package testutils holds fixtures shared by the package tests.
package testutils

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

// CreateTestFilesWithContent creates test files with specific content
func CreateTestFilesWithContent(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
		require.NoError(t, err)
	}
}

// CreateTestFiles creates one-byte files. Their content is not an image;
// the store selects by name.
func CreateTestFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	files := make(map[string]string, len(names))
	for _, n := range names {
		files[n] = "x"
	}
	CreateTestFilesWithContent(t, dir, files)
}

// ImageDir returns a temp directory holding the named files.
func ImageDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	CreateTestFiles(t, dir, names...)
	return dir
}

// WritePNG writes a real w×h PNG to path.
func WritePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	require.NoError(t, png.Encode(f, img))
}

// StripANSI removes ANSI escape sequences from a string
func StripANSI(str string) string {
	return ansi.Strip(str)
}
