// Package gui is the desktop image viewer. Its window is a host.Window, so
// the rename action runs there exactly as in the terminal browser.
package gui

import (
	"picren/internal/plugin"
	"picren/internal/watch"
)

// Settings configure the desktop viewer.
type Settings struct {
	// Watcher, when set, refreshes the image list on directory changes. The
	// caller starts and stops it.
	Watcher *watch.Watcher
	// Renamer configures the rename action.
	Renamer []plugin.Option
}
