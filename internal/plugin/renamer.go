// Package plugin implements the viewer's rename action: F2 opens a dialog
// for the current image's name, renames the file through the store and then
// moves the viewer's cursor to the image's new place in the sorted store.
package plugin

import (
	"strings"

	"picren/internal/host"
	"picren/internal/log"
	"picren/internal/reposition"
)

// ActionName is the name the rename action is registered under.
const ActionName = "rename-file"

// DefaultAccelerator triggers the action when none is configured.
const DefaultAccelerator = "f2"

// FileRenamer attaches the rename action to one window.
type FileRenamer struct {
	window      host.Window
	accelerator string
	forbidden   string

	active *Session
	last   *Session
}

// Option configures a FileRenamer.
type Option func(*FileRenamer)

// WithAccelerator binds the action to key instead of F2.
func WithAccelerator(key string) Option {
	return func(r *FileRenamer) {
		if key != "" {
			r.accelerator = key
		}
	}
}

// WithForbiddenChars sets the characters rejected while typing a name.
// The path separator is always rejected.
func WithForbiddenChars(chars string) Option {
	return func(r *FileRenamer) {
		r.forbidden = chars
	}
}

func New(window host.Window, opts ...Option) *FileRenamer {
	r := &FileRenamer{
		window:      window,
		accelerator: DefaultAccelerator,
		forbidden:   DefaultForbidden,
	}
	for _, opt := range opts {
		opt(r)
	}
	if !strings.Contains(r.forbidden, DefaultForbidden) {
		r.forbidden += DefaultForbidden
	}
	return r
}

// Activate registers the action on the window.
func (r *FileRenamer) Activate() {
	log.Debugf("Activated. Adding action win.%s", ActionName)
	r.window.AddAction(host.Action{
		Name:        ActionName,
		Accelerator: r.accelerator,
		Activate:    r.activated,
	})
}

// Deactivate removes the action from the window.
func (r *FileRenamer) Deactivate() {
	log.Debugf("Deactivated. Removing action win.%s", ActionName)
	r.window.RemoveAction(ActionName)
}

// Busy reports whether a rename dialog is open.
func (r *FileRenamer) Busy() bool {
	return r.active != nil
}

// LastSession returns the most recent session, finished or not.
func (r *FileRenamer) LastSession() *Session {
	return r.last
}

func (r *FileRenamer) activated() {
	if r.active != nil {
		return
	}
	img := r.window.Image()
	if img == nil {
		return
	}
	if !r.window.Store().IsWritable(img) {
		return
	}

	s := newSession(r.window, img, r.forbidden)
	s.relocate = r.setCurrent
	s.onFinish = func(*Session) { r.active = nil }
	r.active = s
	r.last = s
	s.Start()
}

// setCurrent moves the cursor to the renamed image. The store has no lookup
// by name, so the image is found by bisecting the sorted store around its
// old position. Distinct files can share an edit name, so the run of equal
// names is matched by path.
func (r *FileRenamer) setCurrent(oldPos int, renamed host.Image) {
	store := r.window.Store()
	n := store.Length()
	name := renamed.EditName()
	keyAt := func(i int) string { return store.ImageAt(i).EditName() }

	pos, ok := reposition.Find(oldPos, name, n, keyAt, store.Compare)
	if !ok {
		log.LogWithFields(log.F("name", name), log.F("position", pos)).Warn("renamed image not found in store")
		return
	}
	var match host.Image
	for i := pos; i < n; i++ {
		img := store.ImageAt(i)
		if store.Compare(img.EditName(), name) != 0 {
			break
		}
		if img.Path() == renamed.Path() {
			match = img
			break
		}
	}
	if match == nil {
		match = store.ImageAt(pos)
	}
	r.window.ThumbView().SetCurrentImage(match, true)
}
