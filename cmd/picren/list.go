package main

import (
	"fmt"

	"picren/internal/log"
	"picren/internal/store"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var details bool

	cmd := &cobra.Command{
		Use:   "list [directory]",
		Short: "Print the images of a directory in viewer order",
		Long:  `Print the images of a directory with their positions, in the order the viewers show them.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(directoryArg(args))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, img := range s.Images() {
				if !details {
					fmt.Fprintf(out, "%4d  %-40s %8s\n", i, img.EditName(), humanize.Bytes(uint64(img.Size())))
					continue
				}
				d, err := store.Describe(img)
				if err != nil {
					log.LogWithError(err).Warn("could not describe image")
				}
				fmt.Fprintf(out, "%4d  %s\n", i, d)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&details, "details", "d", false, "Show dimensions and capture time")

	return cmd
}
