package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hchawla/pydocgen/internal/compliance"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [files...]",
		Short: "Report pep257 documentation convention violations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !compliance.Available() {
				return fmt.Errorf("pydocstyle not found on PATH")
			}

			out := cmd.OutOrStdout()
			total := 0
			for _, path := range args {
				content, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				violations, err := compliance.Check(string(content))
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				if len(violations) == 0 {
					continue
				}
				total += len(violations)
				fmt.Fprintln(out, headerStyle.Render(path))
				for _, v := range violations {
					fmt.Fprintf(out, "  %4d  %s %s\n", v.Line, codeStyle.Render(v.Code), v.Message)
				}
			}

			if total > 0 {
				return fmt.Errorf("%d violation(s) found", total)
			}
			fmt.Fprintln(out, okStyle.Render("no violations"))
			return nil
		},
	}
}
