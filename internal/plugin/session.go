package plugin

import (
	"fmt"

	"picren/internal/host"
	"picren/internal/log"

	"github.com/google/uuid"
)

// State is a step of one rename invocation.
type State int

const (
	Editing State = iota
	Renaming
	RetryPrompt
	Done
	Aborted
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Renaming:
		return "renaming"
	case RetryPrompt:
		return "retry-prompt"
	case Done:
		return "done"
	case Aborted:
		return "aborted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Finished reports whether the session has ended.
func (s State) Finished() bool {
	return s == Done || s == Aborted
}

// Session walks one image through the rename dialogs:
//
//	Editing -> Renaming -> Done
//	                    -> RetryPrompt -> Editing | Aborted
//	Editing -> Aborted (cancelled or unchanged name)
//
// Dialog results arrive through host callbacks, so the session advances one
// transition per callback.
type Session struct {
	id        string
	window    host.Window
	image     host.Image
	oldName   string
	lastName  string
	forbidden string
	state     State

	// relocate runs on the next idle cycle after a successful rename.
	relocate func(oldPos int, renamed host.Image)
	onFinish func(*Session)
}

func newSession(window host.Window, img host.Image, forbidden string) *Session {
	name := img.EditName()
	return &Session{
		id:        uuid.NewString(),
		window:    window,
		image:     img,
		oldName:   name,
		lastName:  name,
		forbidden: forbidden,
		state:     Editing,
	}
}

// ID identifies the session in log lines.
func (s *Session) ID() string { return s.id }

// State returns the current step.
func (s *Session) State() State { return s.state }

// OldName is the image's name when the session started.
func (s *Session) OldName() string { return s.oldName }

// LastName is the most recently submitted name, or the old name.
func (s *Session) LastName() string { return s.lastName }

// debugf logs under the session's request id. The entry is only built when
// debug output is on.
func (s *Session) debugf(format string, args ...interface{}) {
	if !log.DebugEnabled() {
		return
	}
	log.LogWithFields(log.F("request", s.id), log.F("state", s.state.String())).Debugf(format, args...)
}

// Start shows the rename dialog.
func (s *Session) Start() {
	s.edit()
}

func (s *Session) edit() {
	s.state = Editing
	s.window.ShowRenameDialog(host.RenamePrompt{
		Title:     "Rename File",
		Label:     fmt.Sprintf("Rename “%s” to:", s.oldName),
		Text:      s.lastName,
		SelectLen: BaseNameSelection(s.lastName),
		Forbidden: s.forbidden,
	}, s.submit)
}

func (s *Session) submit(name string, ok bool) {
	if s.state != Editing {
		return
	}
	if !ok || name == s.oldName {
		s.finish(Aborted)
		return
	}

	s.lastName = name
	s.state = Renaming
	s.debugf("Rename '%s' → '%s'", s.oldName, name)

	store := s.window.Store()
	oldPos := store.PosByImage(s.image)
	renamed, err := store.SetDisplayName(s.image, name)
	if err != nil {
		s.debugf("%v", err)
		s.state = RetryPrompt
		s.window.ShowRetryDialog(err.Error(), s.retry)
		return
	}

	if renamed == nil {
		renamed = s.image
	}
	s.finish(Done)
	if s.relocate != nil {
		s.window.IdleAdd(func() { s.relocate(oldPos, renamed) })
	}
}

func (s *Session) retry(again bool) {
	if s.state != RetryPrompt {
		return
	}
	if again {
		s.edit()
		return
	}
	s.finish(Aborted)
}

func (s *Session) finish(state State) {
	s.state = state
	s.debugf("session finished")
	if s.onFinish != nil {
		s.onFinish(s)
	}
}
