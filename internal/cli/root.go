// Package cli implements the command-line interface for pydocgen.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hchawla/pydocgen/internal/config"
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "pydocgen",
	Short: "pydocgen - Python docstring generation and compliance checking",
	Long: `pydocgen analyzes Python source files, generates template docstrings
in Google, NumPy, or reST style, and checks documentation conventions.

Commands:
  generate   Insert missing (or rewrite all) docstrings
  check      Report pep257 violations
  coverage   Report docstring coverage against a threshold
  init       Write a [tool.docgen] stub into pyproject.toml

Settings come from the [tool.docgen] table of ./pyproject.toml; flags
and PYDOCGEN_* environment variables override them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().String("style", "", "docstring style: Google, NumPy, or reST")

	bindFlag := func(key, flag string) {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			panic(fmt.Sprintf("failed to bind %s flag: %v", flag, err))
		}
	}
	bindFlag("style", "style")

	viper.SetEnvPrefix("PYDOCGEN")
	viper.AutomaticEnv()

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newCoverageCmd())
	rootCmd.AddCommand(newInitCmd())
}

// resolveSettings layers pyproject.toml settings under any flag or
// environment overrides.
func resolveSettings() config.Settings {
	s := config.SettingsFrom(config.LoadPyproject())
	if style := viper.GetString("style"); style != "" {
		s.Style = style
	}
	return s
}
