package plugin

import (
	"fmt"
	"sort"
	"strings"

	"picren/internal/errors"
	"picren/internal/host"
)

type fakeImage struct {
	name string
	path string
}

func (i *fakeImage) Path() string {
	if i.path != "" {
		return i.path
	}
	return "/pics/" + i.name
}

func (i *fakeImage) EditName() string { return i.name }

// fakeStore keeps images sorted by name, like the real store.
type fakeStore struct {
	images   []*fakeImage
	readOnly map[string]bool
	failNext error
	lookups  int
}

func newFakeStore(names ...string) *fakeStore {
	s := &fakeStore{readOnly: map[string]bool{}}
	for _, n := range names {
		s.images = append(s.images, &fakeImage{name: n})
	}
	s.sort()
	return s
}

func (s *fakeStore) sort() {
	sort.Slice(s.images, func(i, j int) bool {
		if s.images[i].name != s.images[j].name {
			return s.images[i].name < s.images[j].name
		}
		return s.images[i].Path() < s.images[j].Path()
	})
}

func (s *fakeStore) Length() int { return len(s.images) }

func (s *fakeStore) ImageAt(pos int) host.Image {
	s.lookups++
	return s.images[pos]
}

func (s *fakeStore) PosByImage(img host.Image) int {
	for i, im := range s.images {
		if im == img {
			return i
		}
	}
	return -1
}

func (s *fakeStore) SetDisplayName(img host.Image, name string) (host.Image, error) {
	if s.failNext != nil {
		err := s.failNext
		s.failNext = nil
		return nil, err
	}
	if strings.Contains(name, "/") {
		return nil, errors.NewFileError("invalid file name", name, errors.InvalidName, nil)
	}
	for _, im := range s.images {
		if im.Path() == "/pics/"+name {
			return nil, errors.NewFileError("a file with that name already exists", name, errors.FileExists, nil)
		}
	}
	fi := img.(*fakeImage)
	fi.name, fi.path = name, ""
	s.sort()
	return fi, nil
}

func (s *fakeStore) IsWritable(img host.Image) bool { return !s.readOnly[img.EditName()] }
func (s *fakeStore) Compare(a, b string) int        { return strings.Compare(a, b) }

func (s *fakeStore) names() []string {
	out := make([]string, len(s.images))
	for i, im := range s.images {
		out[i] = im.name
	}
	return out
}

type fakeView struct {
	current host.Image
	scroll  bool
	calls   int
}

func (v *fakeView) SetCurrentImage(img host.Image, scroll bool) {
	v.current = img
	v.scroll = scroll
	v.calls++
}

type renameAnswer struct {
	name string
	ok   bool
}

// fakeWindow answers dialogs from scripted queues and defers idle callbacks
// until runIdle is called.
type fakeWindow struct {
	store   *fakeStore
	view    *fakeView
	current host.Image

	actions map[string]host.Action
	idle    []func()

	renameAnswers []renameAnswer
	retryAnswers  []bool
	prompts       []host.RenamePrompt
	retryMessages []string
}

func newFakeWindow(store *fakeStore) *fakeWindow {
	return &fakeWindow{
		store:   store,
		view:    &fakeView{},
		actions: map[string]host.Action{},
	}
}

func (w *fakeWindow) Image() host.Image {
	if w.current == nil {
		return nil
	}
	return w.current
}

func (w *fakeWindow) Store() host.Store         { return w.store }
func (w *fakeWindow) ThumbView() host.ThumbView { return w.view }

func (w *fakeWindow) AddAction(action host.Action) { w.actions[action.Name] = action }
func (w *fakeWindow) RemoveAction(name string)     { delete(w.actions, name) }
func (w *fakeWindow) IdleAdd(fn func())            { w.idle = append(w.idle, fn) }

func (w *fakeWindow) ShowRenameDialog(prompt host.RenamePrompt, done func(string, bool)) {
	w.prompts = append(w.prompts, prompt)
	if len(w.renameAnswers) == 0 {
		done("", false)
		return
	}
	a := w.renameAnswers[0]
	w.renameAnswers = w.renameAnswers[1:]
	done(a.name, a.ok)
}

func (w *fakeWindow) ShowRetryDialog(message string, done func(bool)) {
	w.retryMessages = append(w.retryMessages, message)
	if len(w.retryAnswers) == 0 {
		done(false)
		return
	}
	a := w.retryAnswers[0]
	w.retryAnswers = w.retryAnswers[1:]
	done(a)
}

func (w *fakeWindow) runIdle() {
	pending := w.idle
	w.idle = nil
	for _, fn := range pending {
		fn()
	}
}

func (w *fakeWindow) press(name string) {
	action, ok := w.actions[name]
	if !ok {
		panic(fmt.Sprintf("action %q not registered", name))
	}
	action.Activate()
}

func (w *fakeWindow) selectName(name string) {
	for _, im := range w.store.images {
		if im.name == name {
			w.current = im
			return
		}
	}
	panic("no image " + name)
}
