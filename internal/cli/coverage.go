package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hchawla/pydocgen/internal/analyze"
	"github.com/hchawla/pydocgen/internal/pyast"
)

func newCoverageCmd() *cobra.Command {
	var min int

	cmd := &cobra.Command{
		Use:   "coverage [files...]",
		Short: "Report docstring coverage against a threshold",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := resolveSettings()
			if cmd.Flags().Changed("min") {
				settings.CoverageMin = min
			}

			out := cmd.OutOrStdout()
			total := 0.0
			for _, path := range args {
				pct, err := fileCoverage(path)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				total += pct
				fmt.Fprintf(out, "  %6.2f%%  %s\n", pct, path)
			}

			avg := total / float64(len(args))
			if avg < float64(settings.CoverageMin) {
				fmt.Fprintf(out, "%s coverage %.2f%% below required %d%%\n",
					failStyle.Render("FAIL"), avg, settings.CoverageMin)
				return fmt.Errorf("docstring coverage %.2f%% < %d%%", avg, settings.CoverageMin)
			}
			fmt.Fprintf(out, "%s coverage %.2f%% meets required %d%%\n",
				okStyle.Render("OK"), avg, settings.CoverageMin)
			return nil
		},
	}

	cmd.Flags().IntVar(&min, "min", 0, "minimum average coverage percent (default from pyproject.toml)")

	return cmd
}

func fileCoverage(path string) (float64, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	tree, err := pyast.Parse(content)
	if err != nil {
		return 0, err
	}
	pyast.AttachParents(tree)
	cat, err := analyze.MapNodes(tree)
	if err != nil {
		return 0, err
	}
	return analyze.Coverage(cat), nil
}
