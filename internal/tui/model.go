// Package tui is the terminal image browser. The model is a host.Window:
// the rename action registers its key on it, opens its dialogs as overlays
// and queues work for the next idle cycle of the tea program.
package tui

import (
	"fmt"

	"picren/internal/host"
	"picren/internal/log"
	"picren/internal/plugin"
	"picren/internal/store"
	"picren/internal/tui/common"
	"picren/internal/tui/components"
	"picren/internal/tui/messages"
	"picren/internal/tui/views"
	"picren/internal/watch"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Rows used by everything but the list.
const chromeHeight = 8

type action struct {
	host.Action
	binding key.Binding
}

type Model struct {
	store   *store.Store
	watcher *watch.Watcher
	renamer *plugin.FileRenamer

	list   *components.ImageList
	status *components.StatusBar
	rename *components.RenameDialog
	retry  *components.ConfirmDialog

	keys     keyMap
	help     help.Model
	showHelp bool
	actions  []action
	idle     []func()

	writeClipboard func(string) error
	renamerOpts    []plugin.Option

	infoPath string
	info     string
}

var _ host.Window = (*Model)(nil)

// Option configures a Model.
type Option func(*Model)

// WithWatcher refreshes the list whenever w reports a change. The caller
// starts and stops w.
func WithWatcher(w *watch.Watcher) Option {
	return func(m *Model) {
		m.watcher = w
	}
}

// WithRenamerOptions configures the rename action.
func WithRenamerOptions(opts ...plugin.Option) Option {
	return func(m *Model) {
		m.renamerOpts = append(m.renamerOpts, opts...)
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(m *Model) {
		m.writeClipboard = write
	}
}

// New creates the browser for a loaded store and activates the rename
// action on it.
func New(s *store.Store, opts ...Option) *Model {
	m := &Model{
		store:          s,
		list:           components.NewImageList(s),
		status:         components.NewStatusBar(),
		keys:           defaultKeyMap(),
		help:           help.New(),
		writeClipboard: clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.renamer = plugin.New(m, m.renamerOpts...)
	m.renamer.Activate()
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("picren"), m.waitForChange())
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetHeight(msg.Height - chromeHeight)
		m.help.Width = msg.Width
	case tea.KeyMsg:
		cmd = m.handleKeyMsg(msg)
	case messages.IdleMsg:
		m.runIdle()
	case messages.ChangeMsg:
		log.LogWithFields(log.F("changes", len(msg.Changes))).Debug("directory changed")
		m.refresh()
		cmd = m.waitForChange()
	case messages.StatusMsg:
		m.status.SetText(msg.Text)
	case messages.ErrorMsg:
		m.status.SetError(msg.Err)
	}

	return m, m.withIdle(cmd)
}

// withIdle schedules the idle queue to run once the current update has been
// rendered.
func (m *Model) withIdle(cmd tea.Cmd) tea.Cmd {
	if len(m.idle) == 0 {
		return cmd
	}
	return tea.Batch(cmd, func() tea.Msg { return messages.IdleMsg{} })
}

func (m *Model) runIdle() {
	for len(m.idle) > 0 {
		fn := m.idle[0]
		m.idle = m.idle[1:]
		fn()
	}
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	switch {
	case m.rename != nil:
		return m.handleRenameKeys(msg)
	case m.retry != nil:
		m.handleRetryKeys(msg)
		return nil
	default:
		return m.handleBrowseKeys(msg)
	}
}

func (m *Model) handleRenameKeys(msg tea.KeyMsg) tea.Cmd {
	d := m.rename
	switch msg.String() {
	case "enter":
		m.rename = nil
		d.Submit()
	case "esc":
		m.rename = nil
		d.Cancel()
	default:
		return d.Update(msg)
	}
	return nil
}

func (m *Model) handleRetryKeys(msg tea.KeyMsg) {
	d := m.retry
	if d.Update(msg) {
		m.retry = nil
		d.Choose()
	}
}

func (m *Model) handleBrowseKeys(msg tea.KeyMsg) tea.Cmd {
	for _, a := range m.actions {
		if key.Matches(msg, a.binding) {
			m.status.Clear()
			a.Activate()
			return nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.list.MoveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.list.MoveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.list.MoveCursor(-m.list.Height())
	case key.Matches(msg, m.keys.PageDown):
		m.list.MoveCursor(m.list.Height())
	case key.Matches(msg, m.keys.Home):
		m.list.SetCursor(0)
	case key.Matches(msg, m.keys.End):
		m.list.SetCursor(m.store.Length() - 1)
	case key.Matches(msg, m.keys.Refresh):
		m.refresh()
	case key.Matches(msg, m.keys.Copy):
		return m.copyPath()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	}
	return nil
}

func (m *Model) quit() tea.Cmd {
	m.renamer.Deactivate()
	return tea.Quit
}

// refresh rescans the directory and keeps the cursor on the same file when
// it still exists.
func (m *Model) refresh() {
	current := ""
	if img := m.list.Current(); img != nil {
		current = img.Path()
	}

	if err := m.store.Refresh(); err != nil {
		log.LogError(err, "refresh failed")
		m.status.SetError(err)
		return
	}
	m.infoPath = ""

	if pos := m.store.PosByPath(current); pos >= 0 {
		m.list.SetCursor(pos)
	} else {
		m.list.Clamp()
	}
}

func (m *Model) copyPath() tea.Cmd {
	img := m.list.Current()
	if img == nil {
		return nil
	}
	path, write := img.Path(), m.writeClipboard
	return func() tea.Msg {
		if err := write(path); err != nil {
			return messages.ErrorMsg{Err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return messages.StatusMsg{Text: "Copied " + path}
	}
}

func (m *Model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	changes := m.watcher.Changes()
	return func() tea.Msg {
		c, ok := <-changes
		if !ok {
			return nil
		}
		return messages.ChangeMsg{Changes: watch.Coalesce(c, changes)}
	}
}

// View implements tea.Model
func (m *Model) View() string {
	return views.RenderMainView(m)
}

// host.Window

func (m *Model) Image() host.Image {
	if img := m.list.Current(); img != nil {
		return img
	}
	return nil
}

func (m *Model) Store() host.Store {
	return m.store
}

func (m *Model) ThumbView() host.ThumbView {
	return m.list
}

func (m *Model) AddAction(a host.Action) {
	m.RemoveAction(a.Name)
	m.actions = append(m.actions, action{Action: a, binding: actionBinding(a.Name, a.Accelerator)})
}

func (m *Model) RemoveAction(name string) {
	for i, a := range m.actions {
		if a.Name == name {
			m.actions = append(m.actions[:i], m.actions[i+1:]...)
			return
		}
	}
}

func (m *Model) IdleAdd(fn func()) {
	m.idle = append(m.idle, fn)
}

func (m *Model) ShowRenameDialog(prompt host.RenamePrompt, done func(name string, ok bool)) {
	m.rename = components.NewRenameDialog(prompt, done)
}

func (m *Model) ShowRetryDialog(message string, done func(retry bool)) {
	m.retry = components.NewConfirmDialog(message, done)
}

// common.ModelReader

func (m *Model) Mode() common.Mode {
	switch {
	case m.rename != nil:
		return common.Renaming
	case m.retry != nil:
		return common.Confirming
	default:
		return common.Browse
	}
}

func (m *Model) Dir() string {
	return m.store.Dir()
}

func (m *Model) Count() int {
	return m.store.Length()
}

func (m *Model) ListView() string {
	return m.list.View()
}

// Info describes the current image. The description is cached until the
// cursor moves or the directory is rescanned.
func (m *Model) Info() string {
	img := m.list.Current()
	if img == nil {
		return ""
	}
	if img.Path() == m.infoPath {
		return m.info
	}

	d, err := store.Describe(img)
	if err != nil {
		log.LogWithError(err).Debug("describe failed")
	}
	m.infoPath, m.info = img.Path(), d.String()
	return m.info
}

func (m *Model) StatusView() string {
	return m.status.View()
}

func (m *Model) DialogView() string {
	switch {
	case m.rename != nil:
		return m.rename.View()
	case m.retry != nil:
		return m.retry.View()
	}
	return ""
}

func (m *Model) HelpView() string {
	keys := helpKeys{keys: m.keys}
	for _, a := range m.actions {
		keys.actions = append(keys.actions, a.binding)
	}
	if m.showHelp {
		return m.help.FullHelpView(keys.FullHelp())
	}
	return m.help.ShortHelpView(keys.ShortHelp())
}

// Cursor is the list position of the current image.
func (m *Model) Cursor() int {
	return m.list.Cursor()
}

// Renamer returns the rename action attached to the model.
func (m *Model) Renamer() *plugin.FileRenamer {
	return m.renamer
}

// Status returns the status bar text.
func (m *Model) Status() string {
	return m.status.Text()
}

// RenameDialog returns the open rename dialog, or nil.
func (m *Model) RenameDialog() *components.RenameDialog {
	return m.rename
}

// RetryDialog returns the open retry dialog, or nil.
func (m *Model) RetryDialog() *components.ConfirmDialog {
	return m.retry
}
