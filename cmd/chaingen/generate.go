// Generate command: renders chain alias source from flags or config.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bugadani/object-chain/pkg/chain/gen"
)

var (
	configFile string
	outPath    string

	// single-chain mode flags
	pkgName      string
	aliasName    string
	aliasTypes   string
	extraImports []string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate chain type alias source",
	Long: `Generate renders a Go source file of chain type aliases.

With --name and --types, a single alias is generated:

  chaingen generate --pkg sprites --name DrawTargets \
      --types color.RGBA,color.Gray --import image/color --out chains_gen.go

Without them, chains are read from a YAML config (default chaingen.yaml):

  package: sprites
  output: chains_gen.go
  imports:
    - image/color
  chains:
    - name: DrawTargets
      types: [color.RGBA, color.Gray]

Pass --out - to write the generated source to stdout.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&configFile, "config", "", "config file (default: chaingen.yaml in the working directory)")
	generateCmd.Flags().StringVar(&outPath, "out", "", "output file, - for stdout (overrides config)")
	generateCmd.Flags().StringVar(&pkgName, "pkg", "", "package name of the generated file")
	generateCmd.Flags().StringVar(&aliasName, "name", "", "alias name for single-chain mode")
	generateCmd.Flags().StringVar(&aliasTypes, "types", "", "comma-separated payload types in append order")
	generateCmd.Flags().StringSliceVar(&extraImports, "import", nil, "extra import path for payload types (repeatable)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	file, output, err := resolveFile()
	if err != nil {
		return err
	}

	if outPath != "" {
		output = outPath
	}
	if output == "" {
		output = "chains_gen.go"
	}

	src, err := file.Render()
	if err != nil {
		return fmt.Errorf("generate chains: %w", err)
	}

	if output == "-" {
		_, err = cmd.OutOrStdout().Write(src)
		return err
	}

	if err := os.WriteFile(output, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	return nil
}

// resolveFile builds the gen.File either from the single-chain flags or
// from the config file. The two modes are mutually exclusive.
func resolveFile() (gen.File, string, error) {
	single := aliasName != "" || aliasTypes != ""
	if !single {
		return loadConfig(configFile)
	}

	if aliasName == "" || aliasTypes == "" {
		return gen.File{}, "", fmt.Errorf("single-chain mode needs both --name and --types")
	}
	if pkgName == "" {
		return gen.File{}, "", fmt.Errorf("single-chain mode needs --pkg")
	}

	file := gen.File{
		Package: pkgName,
		Imports: extraImports,
		Specs: []gen.Spec{{
			Name:  aliasName,
			Types: strings.Split(aliasTypes, ","),
		}},
	}
	return file, "", nil
}
