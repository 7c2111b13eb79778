package main

import (
	"picren/internal/errors"
	"picren/internal/gui"
	"picren/internal/log"

	"github.com/spf13/cobra"
)

// NewGUICmd creates the GUI command for the CLI
func NewGUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui [directory]",
		Short: "Open the desktop image viewer",
		Long:  `Open the desktop viewer on a directory. F2 renames the selected image.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !gui.IsGUIAvailable() {
				return errors.New("GUI not available in this build")
			}

			s, err := openStore(directoryArg(args))
			if err != nil {
				return err
			}

			log.Info("Opening %s in the desktop viewer", s.Dir())
			settings := gui.Settings{Renamer: renamerOptions()}
			if w := startWatcher(s.Dir()); w != nil {
				defer w.Stop()
				settings.Watcher = w
			}
			return gui.StartGUI(s, settings)
		},
	}
}
