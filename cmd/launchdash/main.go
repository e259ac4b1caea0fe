// launchdash serves the launch records dashboard.
//
// Usage:
//
//	launchdash serve
//	launchdash import --file=<csv>
//	launchdash render --site=<site> --min=<kg> --max=<kg> --out=<dir>
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "launchdash",
	Short: "Interactive dashboard for rocket launch records",
	Long:  "launchdash loads a table of launch records and serves two linked charts\nfiltered by launch site and payload mass.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
