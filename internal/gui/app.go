//go:build !nogui

package gui

import (
	"fmt"

	"picren/internal/log"
	"picren/internal/plugin"
	"picren/internal/store"
	"picren/internal/watch"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// App is the GUI application
type App struct {
	fyneApp fyne.App
	window  fyne.Window
	store   *listStore
	watcher *watch.Watcher
	renamer *plugin.FileRenamer

	list      *widget.List
	preview   *canvas.Image
	infoLabel *widget.Label
	current   int

	actions   []registeredAction
	idle      func(fn func())
	stopWatch chan struct{}

	renameDialog *dialog.FormDialog
	renameEntry  *widget.Entry
	retryDialog  *dialog.ConfirmDialog
}

// StartGUI opens the viewer on a loaded store and blocks until the window
// is closed.
func StartGUI(s *store.Store, settings Settings) error {
	a := New(app.NewWithID("io.github.picren"), s, settings)
	a.Run()
	return nil
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return true
}

// New builds the viewer window on fyneApp and activates the rename action.
func New(fyneApp fyne.App, s *store.Store, settings Settings) *App {
	a := &App{
		fyneApp: fyneApp,
		watcher: settings.Watcher,
		current: -1,
		idle: func(fn func()) {
			// Queue behind the events being handled now.
			go fyne.Do(fn)
		},
	}
	a.store = &listStore{Store: s, changed: a.refreshList}
	a.window = fyneApp.NewWindow("picren")

	a.buildContent()
	a.window.Canvas().SetOnTypedKey(a.typedKey)
	a.window.Resize(fyne.NewSize(960, 640))

	a.renamer = plugin.New(a, settings.Renamer...)
	a.renamer.Activate()

	if s.Length() > 0 {
		a.selectPos(0)
	}
	a.watch()
	return a
}

func (a *App) buildContent() {
	a.list = widget.NewList(
		func() int { return a.store.Length() },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if img := a.store.At(id); img != nil {
				obj.(*widget.Label).SetText(img.EditName())
			}
		},
	)
	a.list.OnSelected = func(id widget.ListItemID) {
		a.showImage(id)
		// Keys go back to the canvas so the accelerators keep working.
		a.window.Canvas().Unfocus()
	}

	a.preview = &canvas.Image{FillMode: canvas.ImageFillContain}
	a.infoLabel = widget.NewLabel("")
	a.infoLabel.Truncation = fyne.TextTruncateEllipsis

	title := widget.NewLabelWithStyle(a.store.Dir(), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	right := container.NewBorder(nil, a.infoLabel, nil, nil, a.preview)
	split := container.NewHSplit(a.list, right)
	split.Offset = 0.3

	a.window.SetContent(container.NewBorder(title, nil, nil, nil, split))
	a.window.SetOnClosed(func() {
		a.renamer.Deactivate()
		if a.stopWatch != nil {
			close(a.stopWatch)
			a.stopWatch = nil
		}
	})
}

// Run shows the window and runs the event loop.
func (a *App) Run() {
	a.window.ShowAndRun()
}

// Window returns the main window for testing purposes
func (a *App) Window() fyne.Window {
	return a.window
}

// Current returns the selected position, or -1.
func (a *App) Current() int {
	return a.current
}

func (a *App) typedKey(ke *fyne.KeyEvent) {
	for _, ra := range a.actions {
		if ra.acc.modifier == 0 && ra.acc.key == ke.Name {
			ra.action.Activate()
			return
		}
	}

	switch ke.Name {
	case fyne.KeyUp:
		a.selectPos(a.current - 1)
	case fyne.KeyDown:
		a.selectPos(a.current + 1)
	case fyne.KeyHome:
		a.selectPos(0)
	case fyne.KeyEnd:
		a.selectPos(a.store.Length() - 1)
	case fyne.KeyQ:
		a.window.Close()
	}
}

func (a *App) selectPos(pos int) {
	n := a.store.Length()
	if n == 0 {
		return
	}
	if pos < 0 {
		pos = 0
	}
	if pos >= n {
		pos = n - 1
	}
	a.list.Select(pos)
	a.list.ScrollTo(pos)
	// Select skips OnSelected when pos is selected already, but the image
	// there may have changed.
	a.showImage(pos)
}

func (a *App) showImage(pos int) {
	a.current = pos
	img := a.store.At(pos)
	if img == nil {
		a.preview.File = ""
		a.infoLabel.SetText("")
		a.preview.Refresh()
		return
	}

	a.preview.File = img.Path()
	a.preview.Refresh()

	d, err := store.Describe(img)
	if err != nil {
		log.LogWithError(err).Debug("describe failed")
	}
	a.infoLabel.SetText(d.String())
}

// refreshList redraws the list after the store changed order.
func (a *App) refreshList() {
	a.list.Refresh()
	if a.current >= a.store.Length() {
		a.current = a.store.Length() - 1
	}
}

// rescan reloads the directory and keeps the selection on the same file.
func (a *App) rescan() {
	path := ""
	if img := a.store.At(a.current); img != nil {
		path = img.Path()
	}
	if err := a.store.Refresh(); err != nil {
		log.LogError(err, "refresh failed")
		dialog.ShowError(fmt.Errorf("could not refresh %s: %w", a.store.Dir(), err), a.window)
		return
	}
	a.list.Refresh()

	pos := a.store.PosByPath(path)
	if pos < 0 {
		pos = a.current
	}
	if a.store.Length() == 0 {
		a.list.UnselectAll()
		a.showImage(-1)
		return
	}
	a.selectPos(pos)
}

// watch forwards directory changes to the UI loop.
func (a *App) watch() {
	if a.watcher == nil {
		return
	}
	a.stopWatch = make(chan struct{})
	stop, changes := a.stopWatch, a.watcher.Changes()

	go func() {
		for {
			select {
			case c, ok := <-changes:
				if !ok {
					return
				}
				batch := watch.Coalesce(c, changes)
				log.LogWithFields(log.F("file", c.Path), log.F("changes", len(batch))).Debug("directory changed")
				fyne.Do(a.rescan)
			case <-stop:
				return
			}
		}
	}()
}
