package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time with
// -ldflags "-X main.version=vX.Y.Z"
var version = "v0.1.0"

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of acorn",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "acorn %s\n", version)
			return err
		},
	}
}
