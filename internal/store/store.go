// Package store keeps the images of one directory sorted by name. It is the
// viewer's image collection: positions index the sorted order, renames go
// through SetDisplayName and the store re-sorts itself afterwards.
package store

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"picren/internal/errors"
	"picren/internal/host"
	"picren/internal/log"
)

// Options select and order the images of a directory.
type Options struct {
	Patterns      []string
	DetectContent bool
	ShowHidden    bool
	Collation     string
}

// Store is a sorted image collection for one directory.
type Store struct {
	mu      sync.RWMutex
	dir     string
	images  []*Image
	matcher *Matcher
	compare CompareFunc
}

var _ host.Store = (*Store)(nil)

// New creates an empty store. Call Load to fill it.
func New(opts Options) (*Store, error) {
	matcher, err := NewMatcher(opts.Patterns, opts.DetectContent, opts.ShowHidden)
	if err != nil {
		return nil, err
	}
	compare, err := NewCompare(opts.Collation)
	if err != nil {
		return nil, err
	}
	return &Store{matcher: matcher, compare: compare}, nil
}

// Load lists the images in dir.
func (s *Store) Load(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return errors.NewFileError("invalid directory", dir, errors.FileNotFound, err)
	}
	images, err := s.scan(abs)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.dir = abs
	s.images = images
	s.mu.Unlock()

	log.LogWithFields(log.F("directory", abs), log.F("images", len(images))).Debug("store loaded")
	return nil
}

// Refresh rescans the current directory.
func (s *Store) Refresh() error {
	s.mu.RLock()
	dir := s.dir
	s.mu.RUnlock()
	if dir == "" {
		return nil
	}
	return s.Load(dir)
}

func (s *Store) scan(dir string) ([]*Image, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsPermission(err) {
			return nil, errors.NewFileError("cannot read directory", dir, errors.FileAccessDenied, err)
		}
		if os.IsNotExist(err) {
			return nil, errors.NewFileError("directory not found", dir, errors.FileNotFound, err)
		}
		return nil, errors.NewFileError("cannot read directory", dir, errors.FileOperationFailed, err)
	}

	images := make([]*Image, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		info, ok := regularFile(path, entry)
		if !ok {
			continue
		}
		if !s.matcher.Match(path, entry.Name()) {
			continue
		}
		images = append(images, newImage(path, info))
	}

	s.sortImages(images)
	return images, nil
}

// regularFile reports whether entry is a regular file or a symlink to one.
func regularFile(path string, entry os.DirEntry) (os.FileInfo, bool) {
	if entry.Type().IsRegular() {
		info, err := entry.Info()
		return info, err == nil
	}
	if entry.Type()&os.ModeSymlink != 0 {
		info, err := os.Stat(path)
		if err == nil && info.Mode().IsRegular() {
			return info, true
		}
	}
	return nil, false
}

func (s *Store) sortImages(images []*Image) {
	sort.SliceStable(images, func(i, j int) bool {
		if c := s.compare(images[i].name, images[j].name); c != 0 {
			return c < 0
		}
		return images[i].path < images[j].path
	})
}

// Dir is the loaded directory.
func (s *Store) Dir() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dir
}

func (s *Store) Length() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.images)
}

// ImageAt returns the image at pos, or nil when pos is out of range.
func (s *Store) ImageAt(pos int) host.Image {
	img := s.At(pos)
	if img == nil {
		return nil
	}
	return img
}

// At is ImageAt with the concrete type.
func (s *Store) At(pos int) *Image {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if pos < 0 || pos >= len(s.images) {
		return nil
	}
	return s.images[pos]
}

// Images returns a snapshot of the sorted images.
func (s *Store) Images() []*Image {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Image, len(s.images))
	copy(out, s.images)
	return out
}

func (s *Store) PosByImage(img host.Image) int {
	if img == nil {
		return -1
	}
	return s.PosByPath(img.Path())
}

// PosByPath returns the position of the image stored at path, or -1.
func (s *Store) PosByPath(path string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i, im := range s.images {
		if im.path == path {
			return i
		}
	}
	return -1
}

func (s *Store) Compare(a, b string) int {
	return s.compare(a, b)
}

func (s *Store) IsWritable(img host.Image) bool {
	if img == nil {
		return false
	}
	return writable(img.Path())
}

// ValidateName checks a proposed file name without touching the disk.
func ValidateName(name string) error {
	switch {
	case name == "":
		return errors.NewFileError("file name cannot be empty", "", errors.InvalidName, nil)
	case name == "." || name == "..":
		return errors.NewFileError("invalid file name", name, errors.InvalidName, nil)
	case strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator):
		return errors.NewFileError("file name cannot contain a path separator", name, errors.InvalidName, nil)
	case strings.ContainsRune(name, 0):
		return errors.NewFileError("file name cannot contain NUL", name, errors.InvalidName, nil)
	}
	return nil
}

// SetDisplayName renames img to name within its directory. Existing files
// are never replaced. On success the store is re-sorted and the renamed
// image is returned.
func (s *Store) SetDisplayName(img host.Image, name string) (host.Image, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	oldPath := img.Path()
	newPath := filepath.Join(filepath.Dir(oldPath), name)
	if newPath == oldPath {
		return img, nil
	}

	oldInfo, err := os.Lstat(oldPath)
	if err != nil {
		return nil, fileError("could not rename file", img.EditName(), err)
	}
	// A case-only rename on a case-insensitive filesystem finds the file
	// itself at the new path.
	if info, err := os.Lstat(newPath); err == nil && !os.SameFile(oldInfo, info) {
		return nil, errors.NewFileError("a file with that name already exists", name, errors.FileExists, nil)
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return nil, fileError("could not rename file", img.EditName(), err)
	}

	info, _ := os.Stat(newPath)
	renamed := newImage(newPath, info)

	s.mu.Lock()
	replaced := false
	for i, im := range s.images {
		if im.path == oldPath {
			s.images[i] = renamed
			replaced = true
			break
		}
	}
	if !replaced {
		s.images = append(s.images, renamed)
	}
	s.sortImages(s.images)
	s.mu.Unlock()

	log.LogWithFields(log.F("from", oldPath), log.F("to", newPath)).Debug("renamed")
	return renamed, nil
}

func fileError(msg, name string, err error) error {
	cause := err
	var linkErr *os.LinkError
	var pathErr *os.PathError
	if errors.As(err, &linkErr) {
		cause = linkErr.Err
	} else if errors.As(err, &pathErr) {
		cause = pathErr.Err
	}

	kind := errors.FileOperationFailed
	switch {
	case os.IsPermission(err):
		kind = errors.FileAccessDenied
	case os.IsNotExist(err):
		kind = errors.FileNotFound
	}
	return errors.NewFileError(msg, name, kind, cause)
}
