package plugin

import (
	"bytes"
	"testing"

	"picren/internal/errors"
	"picren/internal/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivateRegistersAction(t *testing.T) {
	w := newFakeWindow(newFakeStore("a.jpg"))
	r := New(w)

	r.Activate()
	require.Contains(t, w.actions, ActionName)
	assert.Equal(t, "f2", w.actions[ActionName].Accelerator)

	r.Deactivate()
	assert.NotContains(t, w.actions, ActionName)

	r = New(w, WithAccelerator("ctrl+r"))
	r.Activate()
	assert.Equal(t, "ctrl+r", w.actions[ActionName].Accelerator)
}

func TestForbiddenCharsAlwaysIncludeSlash(t *testing.T) {
	w := newFakeWindow(newFakeStore("a.jpg"))
	w.selectName("a.jpg")

	r := New(w, WithForbiddenChars(`\`))
	r.Activate()
	w.press(ActionName)

	require.Len(t, w.prompts, 1)
	assert.Contains(t, w.prompts[0].Forbidden, "/")
	assert.Contains(t, w.prompts[0].Forbidden, `\`)
}

func TestRenameNoOps(t *testing.T) {
	t.Run("no active image", func(t *testing.T) {
		w := newFakeWindow(newFakeStore("a.jpg"))
		r := New(w)
		r.Activate()
		w.press(ActionName)
		assert.Empty(t, w.prompts)
		assert.Nil(t, r.LastSession())
	})

	t.Run("not writable", func(t *testing.T) {
		store := newFakeStore("a.jpg")
		store.readOnly["a.jpg"] = true
		w := newFakeWindow(store)
		w.selectName("a.jpg")
		r := New(w)
		r.Activate()
		w.press(ActionName)
		assert.Empty(t, w.prompts)
	})

	t.Run("cancelled", func(t *testing.T) {
		w := newFakeWindow(newFakeStore("a.jpg", "b.jpg"))
		w.selectName("a.jpg")
		w.renameAnswers = []renameAnswer{{"ignored.jpg", false}}
		r := New(w)
		r.Activate()
		w.press(ActionName)

		assert.Equal(t, Aborted, r.LastSession().State())
		assert.Equal(t, []string{"a.jpg", "b.jpg"}, w.store.names())
		assert.Empty(t, w.idle)
		assert.False(t, r.Busy())
	})

	t.Run("unchanged name", func(t *testing.T) {
		w := newFakeWindow(newFakeStore("a.jpg"))
		w.selectName("a.jpg")
		w.renameAnswers = []renameAnswer{{"a.jpg", true}}
		r := New(w)
		r.Activate()
		w.press(ActionName)

		assert.Equal(t, Aborted, r.LastSession().State())
		assert.Empty(t, w.retryMessages)
	})
}

func TestRenamePrompt(t *testing.T) {
	w := newFakeWindow(newFakeStore("holiday.2024.jpg"))
	w.selectName("holiday.2024.jpg")
	r := New(w)
	r.Activate()
	w.press(ActionName)

	require.Len(t, w.prompts, 1)
	p := w.prompts[0]
	assert.Equal(t, "Rename File", p.Title)
	assert.Equal(t, "Rename “holiday.2024.jpg” to:", p.Label)
	assert.Equal(t, "holiday.2024.jpg", p.Text)
	assert.Equal(t, len("holiday.2024"), p.SelectLen)
	assert.Equal(t, "/", p.Forbidden)
}

func TestRenameMovesCursorOnIdle(t *testing.T) {
	w := newFakeWindow(newFakeStore("apple.jpg", "banana.jpg", "cherry.jpg", "date.jpg"))
	w.selectName("banana.jpg")
	w.renameAnswers = []renameAnswer{{"eggplant.jpg", true}}
	r := New(w)
	r.Activate()
	w.press(ActionName)

	assert.Equal(t, Done, r.LastSession().State())
	assert.Equal(t, []string{"apple.jpg", "cherry.jpg", "date.jpg", "eggplant.jpg"}, w.store.names())

	// Repositioning waits for the idle cycle.
	assert.Zero(t, w.view.calls)
	require.Len(t, w.idle, 1)
	w.runIdle()

	require.Equal(t, 1, w.view.calls)
	assert.Equal(t, "eggplant.jpg", w.view.current.EditName())
	assert.True(t, w.view.scroll)
}

func TestRenameToFront(t *testing.T) {
	w := newFakeWindow(newFakeStore("apple", "banana", "cherry", "date"))
	w.selectName("cherry")
	w.renameAnswers = []renameAnswer{{"aardvark", true}}
	r := New(w)
	r.Activate()
	w.press(ActionName)
	w.runIdle()

	assert.Equal(t, "aardvark", w.view.current.EditName())
	assert.Equal(t, 0, w.store.PosByImage(w.view.current))
}

func TestRenameSharedEditNameMatchesPath(t *testing.T) {
	store := newFakeStore("apple.jpg", "banana.jpg")
	// A file whose raw name differs only in bytes the edit name replaces.
	store.images = append(store.images, &fakeImage{name: "kiwi.jpg", path: "/pics/kiwi\x01.jpg"})
	store.sort()

	w := newFakeWindow(store)
	w.selectName("banana.jpg")
	w.renameAnswers = []renameAnswer{{"kiwi.jpg", true}}
	r := New(w)
	r.Activate()
	w.press(ActionName)
	require.Equal(t, Done, r.LastSession().State())
	require.Equal(t, []string{"apple.jpg", "kiwi.jpg", "kiwi.jpg"}, store.names())

	w.runIdle()
	require.NotNil(t, w.view.current)
	assert.Equal(t, "/pics/kiwi.jpg", w.view.current.Path())
	assert.Equal(t, 2, store.PosByImage(w.view.current))
}

func TestSessionDebugLines(t *testing.T) {
	var buf bytes.Buffer
	log.Configure(log.WithOutput(&buf))
	t.Cleanup(func() {
		log.SetDebug(false)
		log.Configure()
	})

	rename := func() *Session {
		w := newFakeWindow(newFakeStore("a.jpg", "b.jpg"))
		w.selectName("a.jpg")
		w.renameAnswers = []renameAnswer{{"c.jpg", true}}
		r := New(w)
		r.Activate()
		w.press(ActionName)
		return r.LastSession()
	}

	log.SetDebug(false)
	rename()
	assert.Empty(t, buf.String())

	log.SetDebug(true)
	s := rename()
	output := buf.String()
	assert.Contains(t, output, "request="+s.ID())
	assert.Contains(t, output, "Rename 'a.jpg' → 'c.jpg'")
	assert.Contains(t, output, "session finished")
}

func TestRenameRetryLoop(t *testing.T) {
	w := newFakeWindow(newFakeStore("a.jpg", "b.jpg", "c.jpg"))
	w.selectName("a.jpg")
	w.renameAnswers = []renameAnswer{{"b.jpg", true}, {"z.jpg", true}}
	w.retryAnswers = []bool{true}
	r := New(w)
	r.Activate()
	w.press(ActionName)

	require.Len(t, w.retryMessages, 1)
	assert.Contains(t, w.retryMessages[0], "already exists")

	// The second prompt is pre-filled with the rejected name.
	require.Len(t, w.prompts, 2)
	assert.Equal(t, "b.jpg", w.prompts[1].Text)
	assert.Equal(t, "Rename “a.jpg” to:", w.prompts[1].Label)

	assert.Equal(t, Done, r.LastSession().State())
	w.runIdle()
	assert.Equal(t, "z.jpg", w.view.current.EditName())
	assert.Equal(t, []string{"b.jpg", "c.jpg", "z.jpg"}, w.store.names())
}

func TestRenameRetryAbort(t *testing.T) {
	w := newFakeWindow(newFakeStore("a.jpg", "b.jpg"))
	w.selectName("a.jpg")
	w.renameAnswers = []renameAnswer{{"b.jpg", true}}
	w.retryAnswers = []bool{false}
	r := New(w)
	r.Activate()
	w.press(ActionName)

	assert.Equal(t, Aborted, r.LastSession().State())
	assert.Len(t, w.retryMessages, 1)
	assert.Len(t, w.prompts, 1)
	assert.Empty(t, w.idle)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, w.store.names())
}

func TestRenameWithoutResortNeeded(t *testing.T) {
	w := newFakeWindow(newFakeStore("a.jpg", "c.jpg", "e.jpg"))
	w.selectName("c.jpg")
	w.renameAnswers = []renameAnswer{{"d.jpg", true}}
	r := New(w)
	r.Activate()
	w.press(ActionName)

	w.store.lookups = 0
	w.runIdle()
	assert.Equal(t, "d.jpg", w.view.current.EditName())
	// Hint, confirmation of the match, then the image handed to the view.
	assert.Equal(t, 3, w.store.lookups)
}

func TestReentrantActivationIgnored(t *testing.T) {
	w := newFakeWindow(newFakeStore("a.jpg"))
	w.selectName("a.jpg")
	r := New(w)
	r.Activate()

	s := newSession(w, w.current, "/")
	r.active = s
	w.press(ActionName)
	assert.Empty(t, w.prompts)
}

func TestRenameFailureMessageShown(t *testing.T) {
	store := newFakeStore("a.jpg")
	store.failNext = errors.NewFileError("permission denied", "/pics/a.jpg", errors.FileAccessDenied, nil)
	w := newFakeWindow(store)
	w.selectName("a.jpg")
	w.renameAnswers = []renameAnswer{{"b.jpg", true}, {"b.jpg", true}}
	w.retryAnswers = []bool{true}
	r := New(w)
	r.Activate()
	w.press(ActionName)

	require.Len(t, w.retryMessages, 1)
	assert.Equal(t, "permission denied: /pics/a.jpg", w.retryMessages[0])
	assert.Equal(t, Done, r.LastSession().State())
	assert.Equal(t, "b.jpg", r.LastSession().LastName())
	assert.Equal(t, "a.jpg", r.LastSession().OldName())
}
