package main

import (
	"os"
	"path/filepath"

	"picren/internal/errors"
	"picren/internal/log"
	"picren/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

// logFilePath is $XDG_STATE_HOME/picren/picren.log, falling back to
// ~/.local/state.
func logFilePath() string {
	state := os.Getenv("XDG_STATE_HOME")
	if state == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = os.TempDir()
		}
		state = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(state, "picren", "picren.log")
}

// runBrowser runs the terminal browser on dir. Log lines go to a file while
// the program owns the terminal.
func runBrowser(dir string) error {
	log.Configure(logOptions(log.WithFile(logFilePath()))...)
	defer log.Close()

	s, err := openStore(dir)
	if err != nil {
		return err
	}
	log.LogWithFields(log.F("directory", s.Dir()), log.F("images", s.Length())).Info("starting terminal browser")

	opts := []tui.Option{tui.WithRenamerOptions(renamerOptions()...)}
	if w := startWatcher(s.Dir()); w != nil {
		defer w.Stop()
		opts = append(opts, tui.WithWatcher(w))
	}

	p := tea.NewProgram(tui.New(s, opts...), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "error running terminal browser")
	}
	return nil
}
