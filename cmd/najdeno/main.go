// Package main provides the najdeno server binary.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

// flagConfigFile is set by the --config flag.
var flagConfigFile string

var rootCmd = &cobra.Command{
	Use:   "najdeno",
	Short: "Najdeno is a lost-and-found item tracking service",
	Long: `Najdeno tracks found items, ownership claims, and staff performance
for a lost-and-found desk. It serves a JSON API and an embedded
dashboard UI over a local SQLite database.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("najdeno " + version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigFile, "config", "", "config file (default: ./najdeno.yaml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
