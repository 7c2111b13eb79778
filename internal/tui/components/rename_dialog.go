package components

import (
	"strings"

	"picren/internal/host"
	"picren/internal/plugin"
	"picren/internal/tui/styles"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// RenameDialog is the modal name entry.
type RenameDialog struct {
	prompt host.RenamePrompt
	input  textinput.Model
	done   func(name string, ok bool)
}

// NewRenameDialog pre-fills the entry with prompt.Text. A text input has no
// selection, so the cursor is placed at the end of the pre-selected part.
func NewRenameDialog(prompt host.RenamePrompt, done func(name string, ok bool)) *RenameDialog {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Width = 48
	// Clipboard pastes bypass the key filter; bracketed paste still works.
	ti.KeyMap.Paste.SetEnabled(false)
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.SetValue(prompt.Text)
	ti.SetCursor(prompt.SelectLen)
	ti.Focus()

	return &RenameDialog{prompt: prompt, input: ti, done: done}
}

func (d *RenameDialog) Value() string {
	return d.input.Value()
}

// Position is the cursor offset in runes.
func (d *RenameDialog) Position() int {
	return d.input.Position()
}

func (d *RenameDialog) Prompt() host.RenamePrompt {
	return d.prompt
}

// Submit reports the entered name. The dialog must not be used afterwards.
func (d *RenameDialog) Submit() {
	d.done(d.input.Value(), true)
}

// Cancel reports a dismissed dialog.
func (d *RenameDialog) Cancel() {
	d.done("", false)
}

// Update edits the entry. Forbidden characters are dropped from typed and
// pasted text.
func (d *RenameDialog) Update(msg tea.KeyMsg) tea.Cmd {
	if len(msg.Runes) > 0 && d.prompt.Forbidden != "" {
		filtered := plugin.FilterInput(string(msg.Runes), d.prompt.Forbidden)
		if filtered == "" {
			return nil
		}
		msg.Runes = []rune(filtered)
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return cmd
}

func (d *RenameDialog) View() string {
	var s strings.Builder
	s.WriteString(styles.Theme.DialogTitle.Render(d.prompt.Title))
	s.WriteString("\n\n")
	s.WriteString(d.prompt.Label)
	s.WriteString("\n")
	s.WriteString(d.input.View())
	s.WriteString("\n\n")
	s.WriteString(styles.Theme.Help.Render("enter rename • esc cancel"))
	return styles.Theme.Dialog.Render(s.String())
}
