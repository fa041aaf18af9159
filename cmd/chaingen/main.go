// Package main provides the chaingen CLI.
//
// chaingen turns flat, append-ordered type lists into generated Go source
// declaring the corresponding nested chain type aliases.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chaingen",
	Short: "chaingen generates chain type aliases from flat type lists",
	Long: `chaingen generates Go type aliases for object chains.

A chain type spelled out by hand reads backwards: the first object appended
is the innermost type parameter. chaingen accepts the type list in the
natural front-to-back order and emits the nested alias, either for a single
chain given on the command line or for every chain listed in a YAML config.`,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("chaingen v0.1.0")
	},
}
