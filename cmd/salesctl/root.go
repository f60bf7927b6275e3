package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	sqlitePath string
}

var rootCmd = &cobra.Command{
	Use:   "salesctl",
	Short: "Administrative tooling for the voice sales backend",
	Long:  "salesctl seeds industry playbooks and imports leads directly into the\nvoice sales database, using the same validation as the API.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.sqlitePath, "sqlite", "", "Use a SQLite database file instead of DATABASE_URL")

	rootCmd.AddCommand(playbooksCmd)
	rootCmd.AddCommand(leadsCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
