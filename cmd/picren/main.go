package main

import (
	"fmt"
	"os"

	"picren/internal/errors"
)

var (
	version = "dev"
)

// Entry point for the application
func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitStatus(err))
	}
}

// exitStatus maps the kind of a failure to the process exit code.
func exitStatus(err error) int {
	switch {
	case errors.Is(err, errors.ErrInvalidName), errors.Is(err, errors.ErrFileExists):
		return 2
	case errors.Is(err, errors.ErrFileNotFound):
		return 3
	case errors.Is(err, errors.ErrFileAccess):
		return 4
	default:
		return 1
	}
}
