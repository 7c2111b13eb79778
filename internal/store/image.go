package store

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"
)

// Image is one file in the store.
type Image struct {
	path    string
	name    string
	size    int64
	modTime time.Time
}

func newImage(path string, info os.FileInfo) *Image {
	img := &Image{
		path: path,
		name: EditName(filepath.Base(path)),
	}
	if info != nil {
		img.size = info.Size()
		img.modTime = info.ModTime()
	}
	return img
}

// Path is the absolute path of the file.
func (i *Image) Path() string { return i.path }

// EditName is the file name made valid UTF-8 for display and editing.
func (i *Image) EditName() string { return i.name }

// Size in bytes when the image was listed.
func (i *Image) Size() int64 { return i.size }

// ModTime when the image was listed.
func (i *Image) ModTime() time.Time { return i.modTime }

// EditName converts a raw file name to its editable form. File names on
// disk are bytes; invalid UTF-8 sequences are replaced by U+FFFD.
func EditName(raw string) string {
	if utf8.ValidString(raw) {
		return raw
	}
	return strings.ToValidUTF8(raw, "�")
}
