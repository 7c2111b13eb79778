//go:build nogui

package gui

import (
	"fmt"

	"picren/internal/store"
)

// StartGUI is a stub implementation for builds with GUI disabled
func StartGUI(s *store.Store, settings Settings) error {
	return fmt.Errorf("GUI not available in this build")
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return false
}
