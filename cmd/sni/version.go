package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/design4music/sni-platform-sub000/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("%s (built %s)\n", version.Full(), version.BuildDate())
	},
}
