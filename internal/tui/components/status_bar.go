package components

import (
	"picren/internal/tui/styles"
)

type StatusBar struct {
	text  string
	isErr bool
}

func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

func (s *StatusBar) SetText(text string) {
	s.text = text
	s.isErr = false
}

// SetError shows err until the next status update.
func (s *StatusBar) SetError(err error) {
	if err == nil {
		s.Clear()
		return
	}
	s.text = err.Error()
	s.isErr = true
}

func (s *StatusBar) Clear() {
	s.text = ""
	s.isErr = false
}

func (s *StatusBar) Text() string {
	return s.text
}

func (s *StatusBar) IsError() bool {
	return s.isErr
}

func (s *StatusBar) View() string {
	if s.text == "" {
		return ""
	}
	if s.isErr {
		return styles.Theme.Error.Render(s.text)
	}
	return styles.Theme.Info.Render(s.text)
}
