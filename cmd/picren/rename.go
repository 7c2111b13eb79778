package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"picren/internal/errors"
	"picren/internal/reposition"

	"github.com/spf13/cobra"
)

// NewRenameCmd creates the rename command
func NewRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <file> <new-name>",
		Short: "Rename one image and report its new position",
		Long: `Rename an image within its directory, the way F2 does in the viewers,
and print its position in the sorted list before and after.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runRename(cmd, args)
			if hint := renameHint(err); hint != "" {
				cmd.PrintErrln(hint)
			}
			return err
		},
	}
}

func runRename(cmd *cobra.Command, args []string) error {
	path, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}
	newName := args[1]
	if strings.ContainsAny(newName, cfg.Rename.ForbiddenChars) {
		return errors.NewFileError("name contains forbidden characters", newName, errors.InvalidName, nil)
	}

	s, err := openStore(filepath.Dir(path))
	if err != nil {
		return err
	}
	oldPos := s.PosByPath(path)
	if oldPos < 0 {
		return errors.NewFileError("not an image in the list", args[0], errors.FileNotFound, nil)
	}
	img := s.At(oldPos)

	renamed, err := s.SetDisplayName(img, newName)
	if err != nil {
		return errors.Wrapf(err, "cannot rename %s", img.EditName())
	}

	keyAt := func(i int) string { return s.ImageAt(i).EditName() }
	newPos, ok := reposition.Find(oldPos, renamed.EditName(), s.Length(), keyAt, s.Compare)
	if !ok || s.ImageAt(newPos) != renamed {
		newPos = s.PosByImage(renamed)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s → %s (position %d → %d)\n",
		img.EditName(), renamed.EditName(), oldPos, newPos)
	return nil
}

// renameHint suggests a way out of a failed rename.
func renameHint(err error) string {
	switch {
	case errors.IsFileExists(err):
		return "Hint: pick a name that is not taken in this directory."
	case errors.IsInvalidName(err):
		return "Hint: a name cannot be empty, '.' or '..', or contain " + strconv.Quote(cfg.Rename.ForbiddenChars) + "."
	case errors.IsFileAccessDenied(err):
		return "Hint: the directory or file is not writable."
	case errors.IsFileNotFound(err):
		return "Hint: run 'picren list' to see the current names."
	default:
		return ""
	}
}
