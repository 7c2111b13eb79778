package components

import (
	"strings"

	"picren/internal/tui/styles"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RetryTitle heads the dialog shown when a rename fails.
const RetryTitle = "Rename Failed"

var retryButtons = [2]string{"Abort", "Enter new name"}

// ConfirmDialog shows a failed rename and asks whether to enter another
// name. "Enter new name" is focused initially.
type ConfirmDialog struct {
	message string
	focus   int
	done    func(retry bool)
}

func NewConfirmDialog(message string, done func(retry bool)) *ConfirmDialog {
	return &ConfirmDialog{message: message, focus: 1, done: done}
}

func (d *ConfirmDialog) Message() string {
	return d.message
}

// Retrying reports whether "Enter new name" is focused.
func (d *ConfirmDialog) Retrying() bool {
	return d.focus == 1
}

// Update moves the focus between the buttons. It returns true once the
// user has chosen; call Choose then.
func (d *ConfirmDialog) Update(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "left", "right", "tab", "shift+tab", "h", "l":
		d.focus = 1 - d.focus
	case "a":
		d.focus = 0
		return true
	case "e":
		d.focus = 1
		return true
	case "esc":
		d.focus = 0
		return true
	case "enter", " ":
		return true
	}
	return false
}

// Choose reports the focused button. The dialog must not be used afterwards.
func (d *ConfirmDialog) Choose() {
	d.done(d.Retrying())
}

func (d *ConfirmDialog) View() string {
	buttons := make([]string, len(retryButtons))
	for i, label := range retryButtons {
		style := styles.Theme.Button
		if i == d.focus {
			style = styles.Theme.ActiveButton
		}
		buttons[i] = style.Render(label)
	}

	var s strings.Builder
	s.WriteString(styles.Theme.DialogTitle.Render(RetryTitle))
	s.WriteString("\n\n")
	s.WriteString(styles.Theme.Error.Render(d.message))
	s.WriteString("\n\n")
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, buttons[0], "  ", buttons[1]))
	return styles.Theme.Dialog.Render(s.String())
}
