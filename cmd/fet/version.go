package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/earfet/fet/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "fet %s\n", version.String())
			return err
		},
	}
}
