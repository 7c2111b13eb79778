//go:build !nogui

package gui

import (
	"picren/internal/host"
	"picren/internal/log"
	"picren/internal/plugin"
	"picren/internal/store"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// RetryTitle heads the dialog shown when a rename fails.
const RetryTitle = "Rename Failed"

var _ host.Window = (*App)(nil)

// listStore redraws the list whenever a rename re-sorts the store.
type listStore struct {
	*store.Store
	changed func()
}

func (s *listStore) SetDisplayName(img host.Image, name string) (host.Image, error) {
	renamed, err := s.Store.SetDisplayName(img, name)
	if err == nil {
		s.changed()
	}
	return renamed, err
}

type registeredAction struct {
	action   host.Action
	acc      accelerator
	shortcut fyne.Shortcut
}

func (a *App) Image() host.Image {
	if img := a.store.At(a.current); img != nil {
		return img
	}
	return nil
}

func (a *App) Store() host.Store {
	return a.store
}

func (a *App) ThumbView() host.ThumbView {
	return a
}

// SetCurrentImage selects img in the list.
func (a *App) SetCurrentImage(img host.Image, scroll bool) {
	if img == nil {
		return
	}
	pos := a.store.PosByImage(img)
	if pos < 0 {
		return
	}
	a.list.Select(pos)
	if scroll {
		a.list.ScrollTo(pos)
	}
	a.showImage(pos)
}

// AddAction binds the action's accelerator. Plain keys are matched by the
// canvas' typed-key handler, combinations become canvas shortcuts.
func (a *App) AddAction(action host.Action) {
	a.RemoveAction(action.Name)

	acc, err := parseAccelerator(action.Accelerator)
	if err != nil {
		log.LogWithFields(log.F("action", action.Name)).Warnf("Ignoring action: %v", err)
		return
	}
	ra := registeredAction{action: action, acc: acc}
	if acc.modifier != 0 {
		ra.shortcut = acc.shortcut()
		a.window.Canvas().AddShortcut(ra.shortcut, func(fyne.Shortcut) { action.Activate() })
	}
	a.actions = append(a.actions, ra)
}

func (a *App) RemoveAction(name string) {
	for i, ra := range a.actions {
		if ra.action.Name == name {
			if ra.shortcut != nil {
				a.window.Canvas().RemoveShortcut(ra.shortcut)
			}
			a.actions = append(a.actions[:i], a.actions[i+1:]...)
			return
		}
	}
}

func (a *App) IdleAdd(fn func()) {
	a.idle(fn)
}

// ShowRenameDialog shows a form with one entry. The entry has no selection
// API, so the cursor is put at the end of the pre-selected part.
func (a *App) ShowRenameDialog(prompt host.RenamePrompt, done func(name string, ok bool)) {
	entry := widget.NewEntry()
	entry.SetText(prompt.Text)
	entry.OnChanged = func(text string) {
		if filtered := plugin.FilterInput(text, prompt.Forbidden); filtered != text {
			entry.SetText(filtered)
		}
	}
	entry.CursorColumn = prompt.SelectLen
	entry.Refresh()

	label := widget.NewLabel(prompt.Label)
	items := []*widget.FormItem{widget.NewFormItem("", container.NewVBox(label, entry))}

	d := dialog.NewForm(prompt.Title, "Rename", "Cancel", items, func(ok bool) {
		a.renameDialog, a.renameEntry = nil, nil
		done(entry.Text, ok)
	}, a.window)
	entry.OnSubmitted = func(string) { d.Submit() }
	d.Resize(fyne.NewSize(420, 200))

	a.renameDialog, a.renameEntry = d, entry
	d.Show()
	a.window.Canvas().Focus(entry)
}

// ShowRetryDialog asks whether to enter another name after a failed rename.
func (a *App) ShowRetryDialog(message string, done func(retry bool)) {
	d := dialog.NewConfirm(RetryTitle, message, func(retry bool) {
		a.retryDialog = nil
		done(retry)
	}, a.window)
	d.SetConfirmText("Enter new name")
	d.SetDismissText("Abort")

	a.retryDialog = d
	d.Show()
}
