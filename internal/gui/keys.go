//go:build !nogui

package gui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

var namedKeys = map[string]fyne.KeyName{
	"enter":     fyne.KeyReturn,
	"return":    fyne.KeyReturn,
	"esc":       fyne.KeyEscape,
	"escape":    fyne.KeyEscape,
	"tab":       fyne.KeyTab,
	"space":     fyne.KeySpace,
	"backspace": fyne.KeyBackspace,
	"delete":    fyne.KeyDelete,
	"insert":    fyne.KeyInsert,
	"home":      fyne.KeyHome,
	"end":       fyne.KeyEnd,
	"pgup":      fyne.KeyPageUp,
	"pgdown":    fyne.KeyPageDown,
}

var modifiers = map[string]fyne.KeyModifier{
	"ctrl":  fyne.KeyModifierControl,
	"alt":   fyne.KeyModifierAlt,
	"shift": fyne.KeyModifierShift,
	"super": fyne.KeyModifierSuper,
}

// accelerator is a parsed key binding like "f2" or "ctrl+r".
type accelerator struct {
	key      fyne.KeyName
	modifier fyne.KeyModifier
}

// shortcut returns the desktop shortcut for bindings with modifiers.
func (a accelerator) shortcut() *desktop.CustomShortcut {
	return &desktop.CustomShortcut{KeyName: a.key, Modifier: a.modifier}
}

func parseAccelerator(s string) (accelerator, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "+")
	var acc accelerator
	for _, p := range parts[:len(parts)-1] {
		mod, ok := modifiers[p]
		if !ok {
			return acc, fmt.Errorf("unknown modifier %q in %q", p, s)
		}
		acc.modifier |= mod
	}

	name := parts[len(parts)-1]
	switch {
	case name == "":
		return acc, fmt.Errorf("empty key in %q", s)
	case namedKeys[name] != "":
		acc.key = namedKeys[name]
	case len(name) == 1 || (name[0] == 'f' && len(name) <= 3):
		// Letters, digits and F1..F12 use their upper-case names.
		acc.key = fyne.KeyName(strings.ToUpper(name))
	default:
		return acc, fmt.Errorf("unknown key %q in %q", name, s)
	}
	return acc, nil
}
